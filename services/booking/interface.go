package booking

import (
	"context"

	bookingRepo "salonora/database/repository/booking"
	catalogRepo "salonora/database/repository/catalog"
	staffRepo "salonora/database/repository/staff"
	"salonora/models"
	"salonora/services/coupon"
	"salonora/services/loyalty"
	"salonora/services/notification"
	"salonora/services/tasks"
)

// GuestDetails carries the contact step of the wizard.
type GuestDetails struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Notes          string `json:"notes"`
	PolicyAccepted bool   `json:"policy_accepted"`
}

// InvoiceRecorder derives a billing record from a persisted booking group.
type InvoiceRecorder interface {
	RecordGroup(groupID string) error
}

// BookingService drives one wizard session from draft to persisted rows.
type BookingService interface {
	StartDraft(ctx context.Context, userID, salonID, bookingType string) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
	CancelDraft(ctx context.Context, draftID string) error

	ToggleService(ctx context.Context, draftID, serviceID string) (*models.BookingDraft, error)
	SetBookingType(ctx context.Context, draftID, bookingType string) (*models.BookingDraft, error)
	ChooseStaff(ctx context.Context, draftID string, staffID *string) (*models.BookingDraft, error)
	ChooseSlot(ctx context.Context, draftID, date, timeSlot string) (*models.BookingDraft, error)
	SetGuestDetails(ctx context.Context, draftID string, details GuestDetails) (*models.BookingDraft, error)
	SetRedeemPoints(ctx context.Context, draftID string, enabled bool) (*models.BookingDraft, error)
	ApplyCoupon(ctx context.Context, draftID, code string) (*models.BookingDraft, error)

	Quote(ctx context.Context, draftID string) (*PriceBreakdown, error)
	DaySchedule(salonID, date string) ([]SlotStatus, error)
	AvailableSpecialists(salonID, date, timeSlot string) ([]models.StaffCandidate, error)

	Submit(ctx context.Context, draftID string) (*models.SubmissionResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Drafts   DraftStore
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Staff    staffRepo.StaffRepository
	Coupons  coupon.CouponService
	Loyalty  loyalty.LoyaltyService

	// Post-submission collaborators; each may be nil in reduced setups and
	// failures there never fail the submission itself.
	Invoices  InvoiceRecorder
	Notify    notification.NotificationService
	Reminders tasks.ReminderScheduler
}
