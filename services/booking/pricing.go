package booking

import (
	"math"

	"salonora/models"
)

// DecideLaterDeposit is the placeholder subtotal charged as a hold when the
// guest books a visit without choosing services yet.
const DecideLaterDeposit = 100.0

// LoyaltyTerms are the redemption parameters in effect for one quote.
type LoyaltyTerms struct {
	PointValue         float64 // currency units per point
	MinPointsToRedeem  int
	MaxDiscountPercent float64 // cap as percent of subtotal
}

// TermsFromProgram converts a salon's loyalty settings into quote terms,
// falling back to platform defaults when the salon has not configured one.
func TermsFromProgram(p *models.LoyaltyProgram) LoyaltyTerms {
	if p == nil {
		return LoyaltyTerms{PointValue: 0.05, MinPointsToRedeem: 50, MaxDiscountPercent: 20}
	}
	return LoyaltyTerms{
		PointValue:         p.PointValue,
		MinPointsToRedeem:  p.MinPointsToRedeem,
		MaxDiscountPercent: p.MaxDiscountPercent,
	}
}

// PriceBreakdown is the result of a quote computation.
type PriceBreakdown struct {
	Subtotal        float64 `json:"subtotal"`
	CouponDiscount  float64 `json:"coupon_discount"`
	LoyaltyDiscount float64 `json:"loyalty_discount"`
	PointsRedeemed  int     `json:"points_redeemed"`
	Total           float64 `json:"total"`
}

// Subtotal sums listed prices over the selected services. A decide-later
// draft with nothing selected is priced at the fixed deposit placeholder.
func Subtotal(services []models.SalonService, bookingType string) float64 {
	if bookingType == models.BookingTypeDecideLater && len(services) == 0 {
		return DecideLaterDeposit
	}
	var sum float64
	for _, svc := range services {
		sum += svc.Price
	}
	return sum
}

// CouponDiscount applies an already-validated coupon to the subtotal using
// its declared kind. Validity is never re-derived here; the state only
// exists after a successful validation round-trip. The result is clamped to
// [0, subtotal].
func CouponDiscount(c *models.CouponState, subtotal float64) float64 {
	if c == nil {
		return 0
	}
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

// LoyaltyDiscount computes the point-redemption discount against the
// post-coupon remainder, and the number of points that redemption consumes.
// The minimum-balance gate is a precondition: below it the term is not
// evaluated at all.
func LoyaltyDiscount(subtotal, couponDiscount float64, balance int, terms LoyaltyTerms) (float64, int) {
	if balance < terms.MinPointsToRedeem {
		return 0, 0
	}

	remaining := subtotal - couponDiscount
	if remaining < 0 {
		remaining = 0
	}
	potential := float64(balance) * terms.PointValue
	capped := subtotal * terms.MaxDiscountPercent / 100

	d := math.Min(potential, math.Min(capped, remaining))
	if d <= 0 {
		return 0, 0
	}

	points := int(math.Ceil(d / terms.PointValue))
	if points > balance {
		points = balance
	}
	return d, points
}

// ComputeBreakdown produces the payable total for a draft. Discounts apply
// in fixed order, coupon first and loyalty against the remainder, and can
// never drive the total negative.
func ComputeBreakdown(services []models.SalonService, bookingType string, coupon *models.CouponState, redeem bool, balance int, terms LoyaltyTerms) PriceBreakdown {
	subtotal := Subtotal(services, bookingType)
	couponD := CouponDiscount(coupon, subtotal)

	var loyaltyD float64
	var points int
	if redeem {
		loyaltyD, points = LoyaltyDiscount(subtotal, couponD, balance, terms)
	}

	total := subtotal - couponD - loyaltyD
	if total < 0 {
		total = 0
	}

	return PriceBreakdown{
		Subtotal:        subtotal,
		CouponDiscount:  couponD,
		LoyaltyDiscount: loyaltyD,
		PointsRedeemed:  points,
		Total:           total,
	}
}
