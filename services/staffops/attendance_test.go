package staffops

import (
	"fmt"
	"testing"
	"time"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	staff   map[string]*models.Staff
	records []*models.Attendance
	closed  []string
}

func (f *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	st, ok := f.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff %s not found", id)
	}
	return st, nil
}

func (f *fakeStaffRepo) GetBySalon(salonID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, st := range f.staff {
		if st.SalonID == salonID && st.Active {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Create(st *models.Staff) error {
	if f.staff == nil {
		f.staff = make(map[string]*models.Staff)
	}
	f.staff[st.ID] = st
	return nil
}

func (f *fakeStaffRepo) Update(st *models.Staff) error { return nil }
func (f *fakeStaffRepo) Delete(id string) error        { return nil }

func (f *fakeStaffRepo) OpenAttendance(staffID, date string) (*models.Attendance, error) {
	for _, r := range f.records {
		if r.StaffID == staffID && r.Date == date && r.ClockOut == nil {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) CreateAttendance(a *models.Attendance) error {
	f.records = append(f.records, a)
	return nil
}

func (f *fakeStaffRepo) CloseAttendance(id string) error {
	for _, r := range f.records {
		if r.ID == id {
			now := time.Now()
			r.ClockOut = &now
			f.closed = append(f.closed, id)
			return nil
		}
	}
	return fmt.Errorf("attendance %s not found", id)
}

func (f *fakeStaffRepo) AttendanceBySalonAndDate(salonID, date string) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, r := range f.records {
		if r.SalonID == salonID && r.Date == date {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newTestService() (*DefaultAttendanceService, *fakeStaffRepo) {
	repo := &fakeStaffRepo{staff: map[string]*models.Staff{
		"staff-1": {ID: "staff-1", SalonID: "salon-1", DisplayName: "Amara", Active: true},
	}}
	return &DefaultAttendanceService{Repo: repo}, repo
}

func TestClockInOpensShift(t *testing.T) {
	svc, repo := newTestService()

	rec, err := svc.ClockIn("staff-1")
	require.NoError(t, err)
	assert.Equal(t, "salon-1", rec.SalonID)
	assert.Equal(t, "staff-1", rec.StaffID)
	assert.Equal(t, today(), rec.Date)
	assert.Nil(t, rec.ClockOut)
	assert.Len(t, repo.records, 1)
}

func TestClockInTwiceRefused(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.ClockIn("staff-1")
	require.NoError(t, err)

	_, err = svc.ClockIn("staff-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already clocked in")
	assert.Len(t, repo.records, 1)
}

func TestClockInUnknownStaff(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ClockIn("nobody")
	assert.Error(t, err)
}

func TestClockOutClosesShift(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.ClockIn("staff-1")
	require.NoError(t, err)

	rec, err := svc.ClockOut("staff-1")
	require.NoError(t, err)
	require.NotNil(t, rec.ClockOut)
	assert.Len(t, repo.closed, 1)

	// The shift is closed, so clocking in again opens a fresh record.
	_, err = svc.ClockIn("staff-1")
	require.NoError(t, err)
	assert.Len(t, repo.records, 2)
}

func TestClockOutWithoutOpenShift(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ClockOut("staff-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no open shift")
}

func TestCreateStaffValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateStaff(&models.Staff{SalonID: "salon-1"})
	assert.Error(t, err)

	st, err := svc.CreateStaff(&models.Staff{SalonID: "salon-1", DisplayName: "Noor"})
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.True(t, st.Active)
}

func TestWorkedMinutes(t *testing.T) {
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	open := &models.Attendance{ClockIn: start}
	assert.Equal(t, 90, open.WorkedMinutes(end))

	closed := &models.Attendance{ClockIn: start, ClockOut: &end}
	assert.Equal(t, 90, closed.WorkedMinutes(end.Add(5*time.Hour)))

	backwards := &models.Attendance{ClockIn: end, ClockOut: &start}
	assert.Equal(t, 0, backwards.WorkedMinutes(end))
}
