package models

import "time"

// Attendance records one staff clock-in/clock-out pair for a day.
type Attendance struct {
	ID       string     `bson:"id" json:"id"`
	SalonID  string     `bson:"salon_id" json:"salon_id"`
	StaffID  string     `bson:"staff_id" json:"staff_id"`
	Date     string     `bson:"date" json:"date"` // "YYYY-MM-DD"
	ClockIn  time.Time  `bson:"clock_in" json:"clock_in"`
	ClockOut *time.Time `bson:"clock_out,omitempty" json:"clock_out,omitempty"`
}

// WorkedMinutes returns minutes between clock-in and clock-out; for an open
// shift it measures up to now.
func (a *Attendance) WorkedMinutes(now time.Time) int {
	end := now
	if a.ClockOut != nil {
		end = *a.ClockOut
	}
	if end.Before(a.ClockIn) {
		return 0
	}
	return int(end.Sub(a.ClockIn).Minutes())
}
