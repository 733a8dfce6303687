package coupon

import (
	"fmt"
	"strings"
	"time"

	couponRepo "salonora/database/repository/coupon"
	"salonora/models"
	"salonora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError reports why a code was rejected. The message is safe to
// surface to the guest.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CouponService owns coupon management and authoritative validation.
type CouponService interface {
	// Validate checks a user-entered code for the salon and subtotal and,
	// on success, returns the applied state with its discount snapshot.
	Validate(code, salonID string, subtotal float64) (*models.CouponState, error)
	GetBySalon(salonID string) ([]models.Coupon, error)
	Create(c *models.Coupon) (*models.Coupon, error)
	Update(c *models.Coupon) error
	Delete(id string) error
}

// DefaultCouponService implements CouponService.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
}

// DiscountFor computes the currency discount a coupon yields against the
// subtotal, clamped to [0, subtotal].
func DiscountFor(c *models.Coupon, subtotal float64) float64 {
	var d float64
	switch c.Kind {
	case models.CouponKindPercentage:
		d = subtotal * c.Value / 100
	case models.CouponKindFixed:
		d = c.Value
	}
	if d < 0 {
		return 0
	}
	if d > subtotal {
		return subtotal
	}
	return d
}

// Validate checks the code against the store. Rejections come back as
// *ValidationError; anything else is a store failure.
func (s *DefaultCouponService) Validate(code, salonID string, subtotal float64) (*models.CouponState, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, &ValidationError{Message: "coupon code is required"}
	}

	c, err := s.Repo.GetByCode(code)
	if err != nil {
		utils.GetLogger().Error("coupon validation lookup failed", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("failed to validate coupon: %w", err)
	}
	if c == nil || !c.Active {
		return nil, &ValidationError{Message: "invalid or expired coupon code"}
	}

	now := time.Now()
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return nil, &ValidationError{Message: "this coupon is not active yet"}
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return nil, &ValidationError{Message: "invalid or expired coupon code"}
	}
	if c.SalonID != "" && c.SalonID != salonID {
		return nil, &ValidationError{Message: "this coupon is not valid at this salon"}
	}
	if c.MinOrderValue > 0 && subtotal < c.MinOrderValue {
		return nil, &ValidationError{Message: fmt.Sprintf("this coupon requires a minimum order of %.2f", c.MinOrderValue)}
	}

	return &models.CouponState{
		Code:           c.Code,
		Kind:           c.Kind,
		Value:          c.Value,
		DiscountAmount: DiscountFor(c, subtotal),
	}, nil
}

func (s *DefaultCouponService) GetBySalon(salonID string) ([]models.Coupon, error) {
	return s.Repo.GetBySalon(salonID)
}

func (s *DefaultCouponService) Create(c *models.Coupon) (*models.Coupon, error) {
	if c.Kind != models.CouponKindPercentage && c.Kind != models.CouponKindFixed {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown coupon kind %q", c.Kind)}
	}
	if c.Value <= 0 {
		return nil, &ValidationError{Message: "coupon value must be positive"}
	}
	if c.Kind == models.CouponKindPercentage && c.Value > 100 {
		return nil, &ValidationError{Message: "percentage coupons cannot exceed 100"}
	}
	c.ID = uuid.New().String()
	c.Active = true
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCouponService) Update(c *models.Coupon) error {
	return s.Repo.Update(c)
}

func (s *DefaultCouponService) Delete(id string) error {
	return s.Repo.Delete(id)
}
