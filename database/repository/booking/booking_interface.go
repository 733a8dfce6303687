package bookingRepo

import "salonora/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a single booking row.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetBySalonAndDate lists non-cancelled bookings for a salon on a date.
	GetBySalonAndDate(salonID, date string) ([]models.Booking, error)
	// GetByGroup lists the rows of one submission group.
	GetByGroup(groupID string) ([]models.Booking, error)
	// GetByUser lists bookings made by one user, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetBySalonBetween lists bookings for a salon with booking_date in
	// [from, to] inclusive, optionally filtered by status.
	GetBySalonBetween(salonID, from, to, status string) ([]models.Booking, error)
	// UpdateStatus transitions a booking's status.
	UpdateStatus(id, status string) error
}
