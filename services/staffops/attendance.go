package staffops

import (
	"fmt"
	"time"

	staffRepo "salonora/database/repository/staff"
	"salonora/models"

	"github.com/google/uuid"
)

// AttendanceService handles staff clock-in/clock-out and daily listings.
type AttendanceService interface {
	// ClockIn opens a shift for the staff member; a second clock-in while
	// a shift is open is refused.
	ClockIn(staffID string) (*models.Attendance, error)
	// ClockOut closes the staff member's open shift for today.
	ClockOut(staffID string) (*models.Attendance, error)
	// Today lists a salon's attendance records for the current date.
	Today(salonID string) ([]models.Attendance, error)
	// ListStaff lists the salon's active staff.
	ListStaff(salonID string) ([]models.Staff, error)
	CreateStaff(st *models.Staff) (*models.Staff, error)
	UpdateStaff(st *models.Staff) error
	DeleteStaff(id string) error
}

// DefaultAttendanceService implements AttendanceService.
type DefaultAttendanceService struct {
	Repo staffRepo.StaffRepository
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (s *DefaultAttendanceService) ClockIn(staffID string) (*models.Attendance, error) {
	st, err := s.Repo.GetByID(staffID)
	if err != nil {
		return nil, fmt.Errorf("unknown staff member: %w", err)
	}

	date := today()
	open, err := s.Repo.OpenAttendance(staffID, date)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("already clocked in at %s", open.ClockIn.Format("15:04"))
	}

	record := &models.Attendance{
		ID:      uuid.New().String(),
		SalonID: st.SalonID,
		StaffID: staffID,
		Date:    date,
		ClockIn: time.Now(),
	}
	if err := s.Repo.CreateAttendance(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *DefaultAttendanceService) ClockOut(staffID string) (*models.Attendance, error) {
	date := today()
	open, err := s.Repo.OpenAttendance(staffID, date)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("no open shift to clock out of")
	}

	if err := s.Repo.CloseAttendance(open.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	open.ClockOut = &now
	return open, nil
}

func (s *DefaultAttendanceService) Today(salonID string) ([]models.Attendance, error) {
	return s.Repo.AttendanceBySalonAndDate(salonID, today())
}

func (s *DefaultAttendanceService) ListStaff(salonID string) ([]models.Staff, error) {
	return s.Repo.GetBySalon(salonID)
}

func (s *DefaultAttendanceService) CreateStaff(st *models.Staff) (*models.Staff, error) {
	if st.DisplayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	st.ID = uuid.New().String()
	st.Active = true
	if err := s.Repo.Create(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *DefaultAttendanceService) UpdateStaff(st *models.Staff) error {
	return s.Repo.Update(st)
}

func (s *DefaultAttendanceService) DeleteStaff(id string) error {
	return s.Repo.Delete(id)
}
