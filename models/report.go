package models

import "time"

// MonthlyRevenue is one bucket of a yearly revenue report.
type MonthlyRevenue struct {
	Month    time.Month `json:"month"`
	Revenue  float64    `json:"revenue"`
	Bookings int        `json:"bookings"`
}

// RevenueReport aggregates completed-booking revenue into 12 monthly buckets.
type RevenueReport struct {
	SalonID string           `json:"salon_id"`
	Year    int              `json:"year"`
	Months  []MonthlyRevenue `json:"months"`
	Total   float64          `json:"total"`
}

// DashboardStats is the owner dashboard snapshot, refreshed in the background
// and served from cache.
type DashboardStats struct {
	SalonID        string    `json:"salon_id"`
	TodayBookings  int       `json:"today_bookings"`
	TodayRevenue   float64   `json:"today_revenue"`
	PendingCount   int       `json:"pending_count"`
	LowStockCount  int       `json:"low_stock_count"`
	StaffClockedIn int       `json:"staff_clocked_in"`
	RefreshedAt    time.Time `json:"refreshed_at"`
}
