package booking

import (
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
)

func services(prices ...float64) []models.SalonService {
	out := make([]models.SalonService, 0, len(prices))
	for i, p := range prices {
		out = append(out, models.SalonService{ID: string(rune('a' + i)), Price: p})
	}
	return out
}

func defaultTerms() LoyaltyTerms {
	return LoyaltyTerms{PointValue: 0.05, MinPointsToRedeem: 50, MaxDiscountPercent: 20}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 150.0, Subtotal(services(50, 60, 40), models.BookingTypeService))
	assert.Equal(t, 0.0, Subtotal(nil, models.BookingTypeService))

	// A decide-later draft with nothing selected carries the deposit.
	assert.Equal(t, DecideLaterDeposit, Subtotal(nil, models.BookingTypeDecideLater))
	// Once services are selected, listed prices win even for decide-later.
	assert.Equal(t, 90.0, Subtotal(services(50, 40), models.BookingTypeDecideLater))
}

func TestCouponDiscount(t *testing.T) {
	assert.Equal(t, 0.0, CouponDiscount(nil, 150))

	pct := &models.CouponState{Code: "TEN", Kind: models.CouponKindPercentage, Value: 10}
	assert.Equal(t, 15.0, CouponDiscount(pct, 150))

	fixed := &models.CouponState{Code: "FLAT", Kind: models.CouponKindFixed, Value: 20}
	assert.Equal(t, 20.0, CouponDiscount(fixed, 150))

	// Clamped to the subtotal; never negative.
	big := &models.CouponState{Code: "BIG", Kind: models.CouponKindFixed, Value: 500}
	assert.Equal(t, 150.0, CouponDiscount(big, 150))
	neg := &models.CouponState{Code: "NEG", Kind: models.CouponKindFixed, Value: -5}
	assert.Equal(t, 0.0, CouponDiscount(neg, 150))
}

func TestLoyaltyDiscountMinimumGate(t *testing.T) {
	// Below the minimum the term is not evaluated at all.
	d, points := LoyaltyDiscount(150, 0, 49, defaultTerms())
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 0, points)

	d, points = LoyaltyDiscount(150, 0, 50, defaultTerms())
	assert.Equal(t, 2.5, d)
	assert.Equal(t, 50, points)
}

func TestLoyaltyDiscountCaps(t *testing.T) {
	terms := defaultTerms()

	// Balance worth more than the 20% cap: capped at subtotal*20%.
	d, _ := LoyaltyDiscount(100, 0, 1000, terms)
	assert.Equal(t, 20.0, d)

	// Applied against the post-coupon remainder.
	d, _ = LoyaltyDiscount(100, 95, 1000, terms)
	assert.Equal(t, 5.0, d)

	// Coupon already consumed everything: nothing left to discount.
	d, points := LoyaltyDiscount(100, 100, 1000, terms)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 0, points)
}

func TestComputeBreakdownFixedOrder(t *testing.T) {
	svcs := services(50, 60, 40) // subtotal 150
	coupon := &models.CouponState{Code: "TEN", Kind: models.CouponKindPercentage, Value: 10}

	b := ComputeBreakdown(svcs, models.BookingTypeService, coupon, true, 100, defaultTerms())
	assert.Equal(t, 150.0, b.Subtotal)
	assert.Equal(t, 15.0, b.CouponDiscount)
	// 100 points at 0.05 each: 5.0, under both the 20% cap and the remainder.
	assert.Equal(t, 5.0, b.LoyaltyDiscount)
	assert.Equal(t, 100, b.PointsRedeemed)
	assert.Equal(t, 130.0, b.Total)
}

func TestComputeBreakdownRedeemDisabled(t *testing.T) {
	b := ComputeBreakdown(services(50, 60, 40), models.BookingTypeService, nil, false, 5000, defaultTerms())
	assert.Equal(t, 0.0, b.LoyaltyDiscount)
	assert.Equal(t, 0, b.PointsRedeemed)
	assert.Equal(t, 150.0, b.Total)
}

func TestComputeBreakdownNeverNegative(t *testing.T) {
	coupon := &models.CouponState{Code: "HUGE", Kind: models.CouponKindFixed, Value: 500}
	b := ComputeBreakdown(services(50), models.BookingTypeService, coupon, true, 5000, defaultTerms())
	assert.Equal(t, 50.0, b.CouponDiscount)
	assert.Equal(t, 0.0, b.Total)
}

func TestComputeBreakdownDecideLater(t *testing.T) {
	b := ComputeBreakdown(nil, models.BookingTypeDecideLater, nil, false, 0, defaultTerms())
	assert.Equal(t, DecideLaterDeposit, b.Subtotal)
	assert.Equal(t, DecideLaterDeposit, b.Total)
}
