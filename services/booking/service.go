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

// StartDraft opens a fresh wizard session for the salon.
func (s *DefaultBookingService) StartDraft(ctx context.Context, userID, salonID, bookingType string) (*models.BookingDraft, error) {
	if salonID == "" {
		return nil, NewValidationError("salon is required")
	}
	if bookingType == "" {
		bookingType = models.BookingTypeService
	}
	if bookingType != models.BookingTypeService && bookingType != models.BookingTypeDecideLater {
		return nil, NewValidationError(fmt.Sprintf("unknown booking type %q", bookingType))
	}

	draft := &models.BookingDraft{
		ID:          uuid.New().String(),
		UserID:      userID,
		SalonID:     salonID,
		BookingType: bookingType,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.Drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, nil
}

// GetDraft loads a wizard session.
func (s *DefaultBookingService) GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if draft == nil {
		return nil, NewDraftNotFoundError(draftID)
	}
	return draft, nil
}

// CancelDraft discards the session.
func (s *DefaultBookingService) CancelDraft(ctx context.Context, draftID string) error {
	return s.Drafts.Delete(ctx, draftID)
}

func (s *DefaultBookingService) mutateDraft(ctx context.Context, draftID string, mutate func(*models.BookingDraft) error) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := mutate(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = time.Now()
	if err := s.Drafts.Set(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return draft, nil
}

// ToggleService adds or removes a service from the selection.
func (s *DefaultBookingService) ToggleService(ctx context.Context, draftID, serviceID string) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		svc, err := s.Catalog.GetServiceByID(serviceID)
		if err != nil {
			return NewValidationError("unknown service")
		}
		if svc.SalonID != d.SalonID {
			return NewValidationError("service belongs to a different salon")
		}
		d.ToggleService(serviceID)
		return nil
	})
}

// SetBookingType switches between a service booking and a decide-later hold.
func (s *DefaultBookingService) SetBookingType(ctx context.Context, draftID, bookingType string) (*models.BookingDraft, error) {
	if bookingType != models.BookingTypeService && bookingType != models.BookingTypeDecideLater {
		return nil, NewValidationError(fmt.Sprintf("unknown booking type %q", bookingType))
	}
	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		d.BookingType = bookingType
		return nil
	})
}

// ChooseStaff records the specialist selection; nil means "any specialist".
func (s *DefaultBookingService) ChooseStaff(ctx context.Context, draftID string, staffID *string) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		if staffID != nil {
			st, err := s.Staff.GetByID(*staffID)
			if err != nil {
				return NewValidationError("unknown staff member")
			}
			if st.SalonID != d.SalonID {
				return NewValidationError("staff member belongs to a different salon")
			}
		}
		d.StaffID = staffID
		return nil
	})
}

// ChooseSlot records the date/time selection. A slot outside the grid, or
// one already taken for that salon day, can never become the selection.
func (s *DefaultBookingService) ChooseSlot(ctx context.Context, draftID, date, timeSlot string) (*models.BookingDraft, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q", date))
	}
	if !ValidSlot(timeSlot) {
		return nil, NewValidationError(fmt.Sprintf("%s is not a bookable time", timeSlot))
	}

	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		existing, err := s.Bookings.GetBySalonAndDate(d.SalonID, date)
		if err != nil {
			return fmt.Errorf("failed to load bookings for %s on %s: %w", d.SalonID, date, err)
		}
		for _, b := range existing {
			if b.Time == timeSlot {
				return NewSlotTakenError(timeSlot)
			}
		}
		d.Date = date
		d.Time = timeSlot
		return nil
	})
}

// SetGuestDetails records the contact step.
func (s *DefaultBookingService) SetGuestDetails(ctx context.Context, draftID string, details GuestDetails) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		d.GuestName = details.FullName
		d.GuestEmail = details.Email
		d.GuestPhone = details.Phone
		d.Notes = details.Notes
		d.PolicyAccepted = details.PolicyAccepted
		return nil
	})
}

// SetRedeemPoints toggles loyalty redemption. Enabling is refused outright
// when the combined balance is below the salon's minimum; the gate lives
// here, ahead of any discount arithmetic.
func (s *DefaultBookingService) SetRedeemPoints(ctx context.Context, draftID string, enabled bool) (*models.BookingDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		if !enabled {
			d.RedeemPoints = false
			return nil
		}
		if d.UserID == "" {
			return NewValidationError("sign in to redeem loyalty points")
		}

		balance, err := s.Loyalty.CombinedBalance(d.UserID, d.SalonID)
		if err != nil {
			return fmt.Errorf("failed to fetch loyalty balance: %w", err)
		}
		terms := s.loyaltyTerms(d.SalonID)
		if balance < terms.MinPointsToRedeem {
			return NewValidationError(fmt.Sprintf("at least %d points are required to redeem", terms.MinPointsToRedeem))
		}
		d.RedeemPoints = true
		return nil
	})
}

// ApplyCoupon validates a code and attaches the result to the draft. While
// a coupon is already applied the action is a no-op: the previous state is
// kept untouched and no validation round-trip happens.
func (s *DefaultBookingService) ApplyCoupon(ctx context.Context, draftID, code string) (*models.BookingDraft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Coupon != nil {
		return draft, nil
	}

	services, err := s.selectedServices(draft)
	if err != nil {
		return nil, err
	}
	subtotal := Subtotal(services, draft.BookingType)

	state, err := s.Coupons.Validate(code, draft.SalonID, subtotal)
	if err != nil {
		// Draft untouched on rejection; the guest may retry another code.
		return nil, err
	}

	return s.mutateDraft(ctx, draftID, func(d *models.BookingDraft) error {
		if d.Coupon != nil {
			return nil
		}
		d.Coupon = state
		return nil
	})
}

// Quote computes the current payable total for the draft.
func (s *DefaultBookingService) Quote(ctx context.Context, draftID string) (*PriceBreakdown, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	breakdown, _, err := s.quoteDraft(draft)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (s *DefaultBookingService) selectedServices(d *models.BookingDraft) ([]models.SalonService, error) {
	services, err := s.Catalog.GetServicesByIDs(d.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected services: %w", err)
	}
	return services, nil
}

func (s *DefaultBookingService) loyaltyTerms(salonID string) LoyaltyTerms {
	program, err := s.Loyalty.Program(salonID)
	if err != nil {
		utils.GetLogger().Warn("loyalty program fetch failed, using defaults",
			zap.String("salonID", salonID), zap.Error(err))
		program = nil
	}
	return TermsFromProgram(program)
}

// quoteDraft resolves services, balance and terms, then prices the draft.
// A failed balance read degrades to zero rather than blocking the flow.
func (s *DefaultBookingService) quoteDraft(d *models.BookingDraft) (*PriceBreakdown, []models.SalonService, error) {
	services, err := s.selectedServices(d)
	if err != nil {
		return nil, nil, err
	}

	balance := 0
	if d.RedeemPoints && d.UserID != "" {
		balance, err = s.Loyalty.CombinedBalance(d.UserID, d.SalonID)
		if err != nil {
			utils.GetLogger().Warn("loyalty balance fetch failed, defaulting to zero",
				zap.String("userID", d.UserID), zap.Error(err))
			balance = 0
		}
	}

	terms := s.loyaltyTerms(d.SalonID)
	breakdown := ComputeBreakdown(services, d.BookingType, d.Coupon, d.RedeemPoints, balance, terms)
	return &breakdown, services, nil
}
