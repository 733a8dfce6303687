package booking

import (
	"fmt"

	"salonora/models"
)

// The bookable day runs 09:00-18:30 in half-hour slots, with a lunch gap:
// 12:30 and 13:00 and 13:30 are not offered.
const (
	dayOpenMinute  = 9 * 60       // 09:00
	dayCloseMinute = 18*60 + 30   // 18:30, last bookable slot
	lunchStart     = 12*60 + 30   // 12:30
	lunchEnd       = 14 * 60      // slots resume at 14:00
)

var slotGrid = buildSlotGrid()

func buildSlotGrid() []string {
	var slots []string
	for m := dayOpenMinute; m <= dayCloseMinute; m += 30 {
		if m >= lunchStart && m < lunchEnd {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// SlotGrid returns the fixed candidate slot times for any date.
func SlotGrid() []string {
	out := make([]string, len(slotGrid))
	copy(out, slotGrid)
	return out
}

// ValidSlot reports whether the time value is one of the offered slots.
func ValidSlot(timeSlot string) bool {
	for _, s := range slotGrid {
		if s == timeSlot {
			return true
		}
	}
	return false
}

// SlotStatus is one grid entry with its bookability for a given salon day.
// Taken slots are still listed so the wizard can render them disabled.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// MarkTakenSlots overlays the fixed grid with the day's existing bookings.
func MarkTakenSlots(existing []models.Booking) []SlotStatus {
	taken := make(map[string]bool, len(existing))
	for _, b := range existing {
		if b.Status != models.BookingStatusCancelled {
			taken[b.Time] = true
		}
	}

	statuses := make([]SlotStatus, 0, len(slotGrid))
	for _, s := range slotGrid {
		statuses = append(statuses, SlotStatus{Time: s, Available: !taken[s]})
	}
	return statuses
}

// DaySchedule returns the slot grid for (salon, date) with booked slots
// marked unavailable.
func (s *DefaultBookingService) DaySchedule(salonID, date string) ([]SlotStatus, error) {
	existing, err := s.Bookings.GetBySalonAndDate(salonID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", salonID, date, err)
	}
	return MarkTakenSlots(existing), nil
}

// FilterFreeSpecialists removes staff already holding a booking at the slot.
// The "any specialist" option is not part of the candidate list; it is
// always offered by the wizard regardless of this result.
func FilterFreeSpecialists(staff []models.Staff, existing []models.Booking, timeSlot string) []models.StaffCandidate {
	busy := make(map[string]bool)
	for _, b := range existing {
		if b.Status == models.BookingStatusCancelled || b.Time != timeSlot {
			continue
		}
		if b.StaffID != nil {
			busy[*b.StaffID] = true
		}
	}

	candidates := make([]models.StaffCandidate, 0, len(staff))
	for _, st := range staff {
		if busy[st.ID] {
			continue
		}
		candidates = append(candidates, models.StaffCandidate{
			ID:          st.ID,
			DisplayName: st.DisplayName,
			AvatarURL:   st.AvatarURL,
		})
	}
	return candidates
}

// AvailableSpecialists lists staff free at (salon, date, time). With no slot
// chosen yet, every active staff member is a candidate.
func (s *DefaultBookingService) AvailableSpecialists(salonID, date, timeSlot string) ([]models.StaffCandidate, error) {
	staff, err := s.Staff.GetBySalon(salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff for salon %s: %w", salonID, err)
	}

	if date == "" || timeSlot == "" {
		candidates := make([]models.StaffCandidate, 0, len(staff))
		for _, st := range staff {
			candidates = append(candidates, models.StaffCandidate{
				ID:          st.ID,
				DisplayName: st.DisplayName,
				AvatarURL:   st.AvatarURL,
			})
		}
		return candidates, nil
	}

	existing, err := s.Bookings.GetBySalonAndDate(salonID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s on %s: %w", salonID, date, err)
	}
	return FilterFreeSpecialists(staff, existing, timeSlot), nil
}
