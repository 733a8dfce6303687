package models

import "time"

// Salon represents a registered salon.
type Salon struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Address      string    `bson:"address" json:"address"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	ImageURL     string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OwnerID      string    `bson:"owner_id" json:"owner_id"`
	WorkingHours string    `bson:"working_hours,omitempty" json:"working_hours,omitempty"` // e.g., "09:00-19:00"
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
