package models

import "time"

// Coupon discount kinds.
const (
	CouponKindPercentage = "percentage"
	CouponKindFixed      = "fixed"
)

// Coupon represents a discount code managed by a salon owner. SalonID is
// empty for platform-wide coupons.
type Coupon struct {
	ID            string     `bson:"id" json:"id"`
	Code          string     `bson:"code" json:"code"`
	SalonID       string     `bson:"salon_id,omitempty" json:"salon_id,omitempty"`
	Kind          string     `bson:"kind" json:"kind"`
	Value         float64    `bson:"value" json:"value"` // percent for percentage kind, currency units for fixed
	MinOrderValue float64    `bson:"min_order_value,omitempty" json:"min_order_value,omitempty"`
	Active        bool       `bson:"active" json:"active"`
	ValidFrom     *time.Time `bson:"valid_from,omitempty" json:"valid_from,omitempty"`
	ValidTo       *time.Time `bson:"valid_to,omitempty" json:"valid_to,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}
