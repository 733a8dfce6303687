package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents one persisted booking row. The store models one row
// per selected service, so a multi-service reservation produces several
// rows sharing the same group ID.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	GroupID        string    `bson:"group_id" json:"group_id"`
	UserID         string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SalonID        string    `bson:"salon_id" json:"salon_id"`
	StaffID        *string   `bson:"staff_id,omitempty" json:"staff_id,omitempty"`     // nil means "any specialist"
	ServiceID      *string   `bson:"service_id,omitempty" json:"service_id,omitempty"` // nil for "decide later" holds
	Date           string    `bson:"booking_date" json:"booking_date"`                 // "YYYY-MM-DD"
	Time           string    `bson:"booking_time" json:"booking_time"`                 // "HH:MM"
	GuestName      string    `bson:"guest_name" json:"guest_name"`
	GuestEmail     string    `bson:"guest_email,omitempty" json:"guest_email,omitempty"`
	GuestPhone     string    `bson:"guest_phone" json:"guest_phone"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string    `bson:"status" json:"status"`
	PricePaid      float64   `bson:"price_paid" json:"price_paid"`
	DiscountAmount float64   `bson:"discount_amount" json:"discount_amount"`
	CouponCode     string    `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// SubmissionResult is returned after a successful draft submission.
type SubmissionResult struct {
	GroupID  string    `json:"group_id"`
	Created  []Booking `json:"created"`
	Total    float64   `json:"total"`
	Discount float64   `json:"discount"`
}
