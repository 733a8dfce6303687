package models

import "time"

// Notification is a per-user in-app notification record.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Kind      string    `bson:"kind" json:"kind"` // e.g., "booking_confirmed", "reminder"
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for a scheduled booking reminder.
type ReminderPayload struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	SalonName string `json:"salonName"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
