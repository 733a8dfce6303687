package models

import "time"

// SalonService represents a bookable treatment or add-on offered by a salon.
type SalonService struct {
	ID          string    `bson:"id" json:"id"`
	SalonID     string    `bson:"salon_id" json:"salon_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration_minutes" json:"duration_minutes"`
	Category    string    `bson:"category" json:"category"`
	AddOn       bool      `bson:"add_on" json:"add_on"` // true for add-on services shown after treatments
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Product represents a retail product sold by a salon.
type Product struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salon_id" json:"salon_id"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Category  string    `bson:"category" json:"category"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
