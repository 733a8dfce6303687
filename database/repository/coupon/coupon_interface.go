package couponRepo

import "salonora/models"

// CouponRepository defines methods for coupon data access.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its code. Returns nil when no coupon
	// with that code exists.
	GetByCode(code string) (*models.Coupon, error)
	// GetBySalon lists coupons scoped to a salon.
	GetBySalon(salonID string) ([]models.Coupon, error)
	// Create inserts a new coupon record.
	Create(c *models.Coupon) error
	// Update modifies an existing coupon record.
	Update(c *models.Coupon) error
	// Delete removes a coupon record.
	Delete(id string) error
}
