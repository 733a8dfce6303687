package models

import "time"

// LoyaltyProgram holds a salon's redemption settings.
type LoyaltyProgram struct {
	SalonID            string  `bson:"salon_id" json:"salon_id"`
	PointValue         float64 `bson:"point_value" json:"point_value"` // currency units per point
	MinPointsToRedeem  int     `bson:"min_points_to_redeem" json:"min_points_to_redeem"`
	MaxDiscountPercent float64 `bson:"max_discount_percent" json:"max_discount_percent"` // cap as percent of subtotal
	EarnPercent        float64 `bson:"earn_percent" json:"earn_percent"`                 // points earned per currency unit paid, as percent
}

// CoinBalance is a user's platform-wide coin balance.
type CoinBalance struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Balance   int       `bson:"balance" json:"balance"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SalonPoints is a user's per-salon loyalty point balance.
type SalonPoints struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	SalonID   string    `bson:"salon_id" json:"salon_id"`
	Balance   int       `bson:"balance" json:"balance"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PointsEntry records one accrual or redemption in the loyalty ledger.
type PointsEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	SalonID   string    `bson:"salon_id,omitempty" json:"salon_id,omitempty"`
	BookingID string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Points    int       `bson:"points" json:"points"` // negative for redemptions
	Reason    string    `bson:"reason" json:"reason"` // "earned" or "redeemed"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
