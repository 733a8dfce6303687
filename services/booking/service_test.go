package booking

import (
	"context"
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDraftDefaults(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingTypeService, draft.BookingType)
	assert.NotEmpty(t, draft.ID)

	_, err = svc.StartDraft(ctx, "", "", "")
	assert.True(t, IsValidationError(err))

	_, err = svc.StartDraft(ctx, "", "salon-1", "walk_in")
	assert.True(t, IsValidationError(err))
}

func TestToggleService(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)

	draft, err = svc.ToggleService(ctx, draft.ID, "svc-cut")
	require.NoError(t, err)
	draft, err = svc.ToggleService(ctx, draft.ID, "svc-color")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-cut", "svc-color"}, draft.ServiceIDs)

	// Toggling again removes, preserving the order of the rest.
	draft, err = svc.ToggleService(ctx, draft.ID, "svc-cut")
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-color"}, draft.ServiceIDs)

	// Unknown services and cross-salon services are refused.
	_, err = svc.ToggleService(ctx, draft.ID, "svc-nope")
	assert.True(t, IsValidationError(err))
	_, err = svc.ToggleService(ctx, draft.ID, "svc-other")
	assert.True(t, IsValidationError(err))
}

func TestChooseSlot(t *testing.T) {
	svc, _, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	bookings.existing = []models.Booking{
		{SalonID: "salon-1", Date: "2026-09-10", Time: "10:00", Status: models.BookingStatusPending},
	}

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)

	// A taken slot can never become the selection.
	_, err = svc.ChooseSlot(ctx, draft.ID, "2026-09-10", "10:00")
	be, ok := err.(*BookingError)
	require.True(t, ok)
	assert.Equal(t, "slotTaken", be.Code)

	// Off-grid times are rejected before any store lookup.
	_, err = svc.ChooseSlot(ctx, draft.ID, "2026-09-10", "13:00")
	assert.True(t, IsValidationError(err))
	_, err = svc.ChooseSlot(ctx, draft.ID, "not-a-date", "10:30")
	assert.True(t, IsValidationError(err))

	draft, err = svc.ChooseSlot(ctx, draft.ID, "2026-09-10", "10:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", draft.Date)
	assert.Equal(t, "10:30", draft.Time)
}

func TestChooseStaff(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)

	staffID := "staff-1"
	draft, err = svc.ChooseStaff(ctx, draft.ID, &staffID)
	require.NoError(t, err)
	require.NotNil(t, draft.StaffID)
	assert.Equal(t, "staff-1", *draft.StaffID)

	// Back to "any specialist".
	draft, err = svc.ChooseStaff(ctx, draft.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, draft.StaffID)

	unknown := "staff-99"
	_, err = svc.ChooseStaff(ctx, draft.ID, &unknown)
	assert.True(t, IsValidationError(err))
}

func TestApplyCouponSecondApplyIsNoop(t *testing.T) {
	svc, _, _, _, coupons, _ := newTestService()
	ctx := context.Background()

	coupons.accepted = "WELCOME10"
	coupons.state = &models.CouponState{Code: "WELCOME10", Kind: models.CouponKindPercentage, Value: 10}

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, draft.ID, "svc-cut")
	require.NoError(t, err)

	draft, err = svc.ApplyCoupon(ctx, draft.ID, "WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, draft.Coupon)
	assert.Equal(t, "WELCOME10", draft.Coupon.Code)
	assert.Equal(t, 1, coupons.validateCalls)

	// A second apply, even with a different code, changes nothing and
	// skips validation entirely.
	draft, err = svc.ApplyCoupon(ctx, draft.ID, "OTHER")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", draft.Coupon.Code)
	assert.Equal(t, 1, coupons.validateCalls)
}

func TestApplyCouponRejectionLeavesDraftUntouched(t *testing.T) {
	svc, _, _, _, coupons, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)

	_, err = svc.ApplyCoupon(ctx, draft.ID, "BOGUS")
	require.Error(t, err)
	assert.Equal(t, 1, coupons.validateCalls)

	reloaded, err := svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Coupon)
}

func TestSetRedeemPointsGate(t *testing.T) {
	svc, _, _, _, _, loyalty := newTestService()
	ctx := context.Background()

	// Guests cannot redeem.
	guest, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)
	_, err = svc.SetRedeemPoints(ctx, guest.ID, true)
	assert.True(t, IsValidationError(err))

	// A balance below the minimum is refused.
	loyalty.balance = 49
	draft, err := svc.StartDraft(ctx, "user-1", "salon-1", "")
	require.NoError(t, err)
	_, err = svc.SetRedeemPoints(ctx, draft.ID, true)
	assert.True(t, IsValidationError(err))

	loyalty.balance = 50
	draft, err = svc.SetRedeemPoints(ctx, draft.ID, true)
	require.NoError(t, err)
	assert.True(t, draft.RedeemPoints)

	draft, err = svc.SetRedeemPoints(ctx, draft.ID, false)
	require.NoError(t, err)
	assert.False(t, draft.RedeemPoints)
}

func TestQuoteDegradesOnBalanceFailure(t *testing.T) {
	svc, _, _, _, _, loyalty := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "user-1", "salon-1", "")
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, draft.ID, "svc-cut")
	require.NoError(t, err)

	loyalty.balance = 100
	_, err = svc.SetRedeemPoints(ctx, draft.ID, true)
	require.NoError(t, err)

	// A failed balance read prices the quote as if the balance were zero.
	loyalty.balanceErr = assert.AnError
	quote, err := svc.Quote(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.LoyaltyDiscount)
	assert.Equal(t, 50.0, quote.Total)
}
