package models

import "time"

// Staff represents a specialist employed by a salon.
type Staff struct {
	ID          string    `bson:"id" json:"id"`
	SalonID     string    `bson:"salon_id" json:"salon_id"`
	UserID      string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	DisplayName string    `bson:"display_name" json:"display_name"`
	Role        string    `bson:"role" json:"role"` // e.g., "stylist", "colorist"
	AvatarURL   string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// StaffCandidate is the view of a staff member offered during booking.
// The "any specialist" option is represented by a nil staff selection on
// the draft, never by a synthetic record here.
type StaffCandidate struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
