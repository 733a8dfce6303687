package booking

import (
	"context"
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyDraft(t *testing.T, svc *DefaultBookingService, userID string, serviceIDs ...string) *models.BookingDraft {
	t.Helper()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, userID, "salon-1", "")
	require.NoError(t, err)
	for _, id := range serviceIDs {
		_, err = svc.ToggleService(ctx, draft.ID, id)
		require.NoError(t, err)
	}
	_, err = svc.ChooseSlot(ctx, draft.ID, "2026-09-10", "10:00")
	require.NoError(t, err)
	draft, err = svc.SetGuestDetails(ctx, draft.ID, GuestDetails{
		FullName:       "Dana Reyes",
		Phone:          "555-0101",
		PolicyAccepted: true,
	})
	require.NoError(t, err)
	return draft
}

func TestSubmitMultiServiceDiscountOnFirstRow(t *testing.T) {
	svc, _, _, bookings, coupons, _ := newTestService()
	ctx := context.Background()

	coupons.accepted = "FLAT20"
	coupons.state = &models.CouponState{Code: "FLAT20", Kind: models.CouponKindFixed, Value: 20}

	draft := readyDraft(t, svc, "", "svc-cut", "svc-color", "svc-spa")
	_, err := svc.ApplyCoupon(ctx, draft.ID, "FLAT20")
	require.NoError(t, err)

	result, err := svc.Submit(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, result.Created, 3)

	// One row per service, selection order preserved, one shared group.
	for _, b := range result.Created {
		assert.Equal(t, result.GroupID, b.GroupID)
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.Equal(t, "FLAT20", b.CouponCode)
	}
	require.NotNil(t, result.Created[0].ServiceID)
	assert.Equal(t, "svc-cut", *result.Created[0].ServiceID)
	assert.Equal(t, "svc-color", *result.Created[1].ServiceID)
	assert.Equal(t, "svc-spa", *result.Created[2].ServiceID)

	// The first row absorbs the full discount; later rows are unmodified.
	assert.Equal(t, 30.0, result.Created[0].PricePaid)
	assert.Equal(t, 20.0, result.Created[0].DiscountAmount)
	assert.Equal(t, 60.0, result.Created[1].PricePaid)
	assert.Equal(t, 0.0, result.Created[1].DiscountAmount)
	assert.Equal(t, 40.0, result.Created[2].PricePaid)

	assert.Equal(t, 130.0, result.Total)
	assert.Equal(t, 20.0, result.Discount)
	assert.Len(t, bookings.created, 3)
}

func TestSubmitDecideLaterHold(t *testing.T) {
	svc, _, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	draft := readyDraft(t, svc, "")
	_, err := svc.SetBookingType(ctx, draft.ID, models.BookingTypeDecideLater)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, result.Created, 1)

	hold := result.Created[0]
	assert.Nil(t, hold.ServiceID)
	assert.Equal(t, DecideLaterDeposit, hold.PricePaid)
	assert.Len(t, bookings.created, 1)
}

func TestSubmitStopsOnFirstError(t *testing.T) {
	svc, drafts, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	draft := readyDraft(t, svc, "", "svc-cut", "svc-color", "svc-spa")
	bookings.failOn = 2

	_, err := svc.Submit(ctx, draft.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create booking 2 of 3")

	// The first row stands; nothing is rolled back. The draft survives so
	// the guest can retry.
	assert.Len(t, bookings.created, 1)
	assert.Contains(t, drafts.drafts, draft.ID)
}

func TestSubmitRechecksSlot(t *testing.T) {
	svc, drafts, _, bookings, _, _ := newTestService()
	ctx := context.Background()

	draft := readyDraft(t, svc, "", "svc-cut")

	// The slot is snatched between the chooser step and submission.
	bookings.existing = append(bookings.existing, models.Booking{
		ID: "b-rival", SalonID: "salon-1", Date: "2026-09-10", Time: "10:00",
		Status: models.BookingStatusConfirmed,
	})

	_, err := svc.Submit(ctx, draft.ID)
	require.Error(t, err)
	be, ok := err.(*BookingError)
	require.True(t, ok)
	assert.Equal(t, "slotTaken", be.Code)

	assert.Empty(t, bookings.created)
	assert.Contains(t, drafts.drafts, draft.ID)
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.StartDraft(ctx, "", "salon-1", "")
	require.NoError(t, err)
	_, err = svc.ToggleService(ctx, draft.ID, "svc-cut")
	require.NoError(t, err)

	// No slot, no contact details, no policy acceptance.
	_, err = svc.Submit(ctx, draft.ID)
	assert.True(t, IsValidationError(err))

	_, err = svc.ChooseSlot(ctx, draft.ID, "2026-09-10", "10:00")
	require.NoError(t, err)
	_, err = svc.SetGuestDetails(ctx, draft.ID, GuestDetails{FullName: "Dana", Phone: "555-0101"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, draft.ID)
	assert.True(t, IsValidationError(err))
}

func TestSubmitDiscardsDraftAndSettles(t *testing.T) {
	svc, drafts, _, _, _, loyalty := newTestService()
	ctx := context.Background()

	loyalty.balance = 100
	draft := readyDraft(t, svc, "user-1", "svc-cut", "svc-color")
	_, err := svc.SetRedeemPoints(ctx, draft.ID, true)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, draft.ID)
	require.NoError(t, err)

	// 100 points at the default 0.05 each knock 5.0 off the first row.
	assert.Equal(t, 105.0, result.Total)
	require.Len(t, loyalty.redeemed, 1)
	assert.Equal(t, 100, loyalty.redeemed[0])

	// Accrual runs over what was actually paid.
	require.Len(t, loyalty.accrued, 1)
	assert.Equal(t, 105.0, loyalty.accrued[0])

	assert.NotContains(t, drafts.drafts, draft.ID)
}
