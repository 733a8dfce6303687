package models

import "time"

// Booking types for a draft.
const (
	BookingTypeService     = "service"
	BookingTypeDecideLater = "decide_later"
)

// CouponState holds an applied, already-validated coupon on a draft. It is
// only ever set by a successful validation round-trip.
type CouponState struct {
	Code           string  `json:"code"`
	Kind           string  `json:"kind"` // "percentage" or "fixed"
	Value          float64 `json:"value"`
	DiscountAmount float64 `json:"discount_amount"` // computed against the subtotal at validation time
}

// BookingDraft is the in-progress state of one booking wizard session. It
// lives in the draft cache under its ID and is discarded on submission
// success or expiry.
type BookingDraft struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id,omitempty"`
	SalonID     string  `json:"salon_id"`
	BookingType string  `json:"booking_type"`
	ServiceIDs  []string `json:"service_ids"` // insertion order, no duplicates
	StaffID     *string `json:"staff_id,omitempty"` // nil means "any specialist"
	Date        string  `json:"date,omitempty"`
	Time        string  `json:"time,omitempty"`

	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Notes      string `json:"notes,omitempty"`

	PolicyAccepted bool         `json:"policy_accepted"`
	Coupon         *CouponState `json:"coupon,omitempty"`
	RedeemPoints   bool         `json:"redeem_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToggleService adds the service ID if absent and removes it if present.
// Insertion order of the remaining IDs is preserved.
func (d *BookingDraft) ToggleService(serviceID string) {
	for i, id := range d.ServiceIDs {
		if id == serviceID {
			d.ServiceIDs = append(d.ServiceIDs[:i], d.ServiceIDs[i+1:]...)
			return
		}
	}
	d.ServiceIDs = append(d.ServiceIDs, serviceID)
}

// HasService reports whether the service is currently selected.
func (d *BookingDraft) HasService(serviceID string) bool {
	for _, id := range d.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
