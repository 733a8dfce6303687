package booking

import (
	"context"
	"fmt"
	"time"

	"salonora/models"
	"salonora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit turns the draft into persisted booking rows, one row per selected
// service. Rows are created sequentially in selection order and the full
// discount is attributed to the first row only; later rows carry the item
// price unmodified. A failure partway through stops the loop and leaves the
// earlier rows in place; there is no compensating rollback.
func (s *DefaultBookingService) Submit(ctx context.Context, draftID string) (*models.SubmissionResult, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := validateForSubmission(draft); err != nil {
		return nil, err
	}

	// The slot was free when chosen; someone may have taken it since.
	existing, err := s.Bookings.GetBySalonAndDate(draft.SalonID, draft.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", draft.SalonID, draft.Date, err)
	}
	for _, b := range existing {
		if b.Time == draft.Time {
			return nil, NewSlotTakenError(draft.Time)
		}
	}

	breakdown, services, err := s.quoteDraft(draft)
	if err != nil {
		return nil, err
	}

	groupID := uuid.New().String()
	var rows []models.Booking
	if draft.BookingType == models.BookingTypeDecideLater || len(services) == 0 {
		rows = []models.Booking{s.holdRow(draft, groupID, breakdown)}
	} else {
		rows = s.serviceRows(draft, groupID, services, breakdown)
	}

	created := make([]models.Booking, 0, len(rows))
	for i := range rows {
		if err := s.Bookings.Create(&rows[i]); err != nil {
			utils.GetLogger().Error("booking creation failed partway",
				zap.String("groupID", groupID),
				zap.Int("createdSoFar", len(created)),
				zap.Error(err))
			return nil, fmt.Errorf("failed to create booking %d of %d: %w", i+1, len(rows), err)
		}
		created = append(created, rows[i])
	}

	result := &models.SubmissionResult{
		GroupID:  groupID,
		Created:  created,
		Total:    breakdown.Total,
		Discount: breakdown.CouponDiscount + breakdown.LoyaltyDiscount,
	}

	s.settleAfterSubmit(ctx, draft, result, breakdown)

	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		utils.GetLogger().Warn("failed to discard submitted draft", zap.String("draftID", draftID), zap.Error(err))
	}

	return result, nil
}

func validateForSubmission(d *models.BookingDraft) error {
	switch {
	case d.SalonID == "":
		return NewValidationError("salon is required")
	case d.Date == "":
		return NewValidationError("please choose a date")
	case d.Time == "":
		return NewValidationError("please choose a time slot")
	case d.GuestName == "":
		return NewValidationError("please enter your name")
	case d.GuestPhone == "":
		return NewValidationError("please enter a phone number")
	case !d.PolicyAccepted:
		return NewValidationError("please accept the cancellation policy")
	}
	return nil
}

// holdRow builds the single "decide later" booking row. The hold is charged
// the computed total, or the fixed deposit when the total works out to zero.
func (s *DefaultBookingService) holdRow(d *models.BookingDraft, groupID string, breakdown *PriceBreakdown) models.Booking {
	price := breakdown.Total
	if price == 0 {
		price = DecideLaterDeposit
	}
	row := s.baseRow(d, groupID)
	row.PricePaid = price
	row.DiscountAmount = breakdown.CouponDiscount + breakdown.LoyaltyDiscount
	return row
}

// serviceRows builds one row per selected service, in selection order. The
// first row absorbs the entire discount.
func (s *DefaultBookingService) serviceRows(d *models.BookingDraft, groupID string, services []models.SalonService, breakdown *PriceBreakdown) []models.Booking {
	discount := breakdown.CouponDiscount + breakdown.LoyaltyDiscount

	rows := make([]models.Booking, 0, len(services))
	for i, svc := range services {
		row := s.baseRow(d, groupID)
		serviceID := svc.ID
		row.ServiceID = &serviceID

		if i == 0 {
			price := svc.Price - discount
			if price < 0 {
				price = 0
			}
			row.PricePaid = price
			row.DiscountAmount = discount
		} else {
			row.PricePaid = svc.Price
			row.DiscountAmount = 0
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *DefaultBookingService) baseRow(d *models.BookingDraft, groupID string) models.Booking {
	row := models.Booking{
		ID:         uuid.New().String(),
		GroupID:    groupID,
		UserID:     d.UserID,
		SalonID:    d.SalonID,
		StaffID:    d.StaffID,
		Date:       d.Date,
		Time:       d.Time,
		GuestName:  d.GuestName,
		GuestEmail: d.GuestEmail,
		GuestPhone: d.GuestPhone,
		Notes:      d.Notes,
		Status:     models.BookingStatusPending,
	}
	if d.Coupon != nil {
		row.CouponCode = d.Coupon.Code
	}
	return row
}

// settleAfterSubmit runs the post-success side effects: point redemption
// and accrual, invoice derivation, notification and reminder scheduling.
// None of these can fail the submission; errors are logged and the booking
// rows stand.
func (s *DefaultBookingService) settleAfterSubmit(ctx context.Context, d *models.BookingDraft, result *models.SubmissionResult, breakdown *PriceBreakdown) {
	logger := utils.GetLogger()
	firstID := result.Created[0].ID

	if d.UserID != "" && breakdown.PointsRedeemed > 0 {
		if err := s.Loyalty.Redeem(d.UserID, d.SalonID, firstID, breakdown.PointsRedeemed); err != nil {
			logger.Error("loyalty redemption failed after submission", zap.String("groupID", result.GroupID), zap.Error(err))
		}
	}

	if d.UserID != "" {
		var paid float64
		for _, b := range result.Created {
			paid += b.PricePaid
		}
		if err := s.Loyalty.Accrue(d.UserID, d.SalonID, firstID, paid); err != nil {
			logger.Error("loyalty accrual failed after submission", zap.String("groupID", result.GroupID), zap.Error(err))
		}
	}

	if s.Invoices != nil {
		if err := s.Invoices.RecordGroup(result.GroupID); err != nil {
			logger.Error("invoice derivation failed", zap.String("groupID", result.GroupID), zap.Error(err))
		}
	}

	if s.Notify != nil {
		body := fmt.Sprintf("Your visit on %s at %s is booked.", d.Date, d.Time)
		if err := s.Notify.Notify(ctx, d.UserID, "booking_confirmed", "Booking received", body); err != nil {
			logger.Warn("booking notification failed", zap.String("groupID", result.GroupID), zap.Error(err))
		}
	}

	if s.Reminders != nil && d.UserID != "" {
		s.scheduleReminder(d, firstID)
	}
}

// scheduleReminder enqueues a push for the day before the visit; same-day
// bookings get no reminder.
func (s *DefaultBookingService) scheduleReminder(d *models.BookingDraft, bookingID string) {
	slot, err := time.Parse("2006-01-02 15:04", d.Date+" "+d.Time)
	if err != nil {
		return
	}
	fireAt := slot.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		UserID:    d.UserID,
		BookingID: bookingID,
		Date:      d.Date,
		Time:      d.Time,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("Reminder: you have an appointment tomorrow at %s.", d.Time),
	}
	if err := s.Reminders.Schedule(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder", zap.String("bookingID", bookingID), zap.Error(err))
	}
}
