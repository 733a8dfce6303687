package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleOwner    = "owner"
)

// User represents an account holder: customer, staff member or salon owner.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	SalonID      string    `bson:"salon_id,omitempty" json:"salon_id,omitempty"` // set for staff/owner accounts
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
