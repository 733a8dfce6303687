package staffRepo

import "salonora/models"

// StaffRepository defines data access for staff and attendance records.
type StaffRepository interface {
	// GetByID retrieves a staff member by ID.
	GetByID(id string) (*models.Staff, error)
	// GetBySalon lists active staff for a salon.
	GetBySalon(salonID string) ([]models.Staff, error)
	// Create inserts a new staff record.
	Create(st *models.Staff) error
	// Update modifies an existing staff record.
	Update(st *models.Staff) error
	// Delete removes a staff record.
	Delete(id string) error

	// OpenAttendance returns the staff member's open (not clocked-out)
	// attendance record for the date, or nil if none exists.
	OpenAttendance(staffID, date string) (*models.Attendance, error)
	// CreateAttendance inserts a clock-in record.
	CreateAttendance(a *models.Attendance) error
	// CloseAttendance sets the clock-out time on an attendance record.
	CloseAttendance(id string) error
	// AttendanceBySalonAndDate lists attendance records for a salon day.
	AttendanceBySalonAndDate(salonID, date string) ([]models.Attendance, error)
}
