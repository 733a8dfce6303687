package booking

import (
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()
	require.NotEmpty(t, grid)

	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "18:30", grid[len(grid)-1])

	// Half-hour steps from 09:00 through 18:30 are 20 slots; the lunch gap
	// removes 12:30, 13:00 and 13:30.
	assert.Len(t, grid, 17)
	assert.NotContains(t, grid, "12:30")
	assert.NotContains(t, grid, "13:00")
	assert.NotContains(t, grid, "13:30")
	assert.Contains(t, grid, "12:00")
	assert.Contains(t, grid, "14:00")
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("09:00"))
	assert.True(t, ValidSlot("18:30"))
	assert.False(t, ValidSlot("13:00"))
	assert.False(t, ValidSlot("08:30"))
	assert.False(t, ValidSlot("19:00"))
	assert.False(t, ValidSlot("10:15"))
}

func TestMarkTakenSlots(t *testing.T) {
	existing := []models.Booking{
		{Time: "10:00", Status: models.BookingStatusPending},
		{Time: "11:30", Status: models.BookingStatusConfirmed},
		{Time: "15:00", Status: models.BookingStatusCancelled},
	}

	statuses := MarkTakenSlots(existing)
	byTime := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["11:30"])
	// Cancelled bookings release the slot.
	assert.True(t, byTime["15:00"])
	assert.True(t, byTime["09:00"])
}

func TestFilterFreeSpecialists(t *testing.T) {
	staff := []models.Staff{
		{ID: "staff-1", DisplayName: "Ana"},
		{ID: "staff-2", DisplayName: "Bea"},
	}
	busyID := "staff-1"
	existing := []models.Booking{
		{Time: "10:00", StaffID: &busyID, Status: models.BookingStatusPending},
		// An "any specialist" booking holds no particular person.
		{Time: "10:00", StaffID: nil, Status: models.BookingStatusPending},
		// Busy at a different slot does not matter.
		{Time: "11:00", StaffID: &busyID, Status: models.BookingStatusPending},
	}

	free := FilterFreeSpecialists(staff, existing, "10:00")
	require.Len(t, free, 1)
	assert.Equal(t, "staff-2", free[0].ID)

	free = FilterFreeSpecialists(staff, existing, "12:00")
	assert.Len(t, free, 2)
}
