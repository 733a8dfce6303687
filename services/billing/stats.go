package billing

import (
	"context"
	"encoding/json"
	"time"

	"salonora/models"
	"salonora/utils"

	"go.uber.org/zap"
)

// statsCacheTTL bounds how stale a served snapshot can get if the background
// refresher stops.
const statsCacheTTL = 5 * time.Minute

func (s *DefaultBillingService) DashboardStats(salonID string) (*models.DashboardStats, error) {
	if cached := s.cachedStats(salonID); cached != nil {
		return cached, nil
	}
	return s.RefreshStats(salonID)
}

func (s *DefaultBillingService) RefreshStats(salonID string) (*models.DashboardStats, error) {
	stats, err := s.computeStats(salonID)
	if err != nil {
		return nil, err
	}
	s.storeStats(stats)
	return stats, nil
}

func (s *DefaultBillingService) computeStats(salonID string) (*models.DashboardStats, error) {
	today := time.Now().Format("2006-01-02")
	stats := &models.DashboardStats{
		SalonID:     salonID,
		RefreshedAt: time.Now(),
	}

	bookings, err := s.Bookings.GetBySalonAndDate(salonID, today)
	if err != nil {
		return nil, err
	}
	stats.TodayBookings = len(bookings)
	for _, b := range bookings {
		stats.TodayRevenue += b.PricePaid
		if b.Status == models.BookingStatusPending {
			stats.PendingCount++
		}
	}

	items, err := s.Inventory.GetBySalon(salonID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if lvl := items[i].StockLevel(); lvl == models.StockLow || lvl == models.StockOut {
			stats.LowStockCount++
		}
	}

	attendance, err := s.Staff.AttendanceBySalonAndDate(salonID, today)
	if err != nil {
		return nil, err
	}
	for _, a := range attendance {
		if a.ClockOut == nil {
			stats.StaffClockedIn++
		}
	}
	return stats, nil
}

func (s *DefaultBillingService) cachedStats(salonID string) *models.DashboardStats {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, err := s.Cache.Get(ctx, utils.DashboardStatsKey+salonID).Result()
	if err != nil {
		return nil
	}
	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DefaultBillingService) storeStats(stats *models.DashboardStats) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, utils.DashboardStatsKey+stats.SalonID, data, statsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache dashboard stats",
			zap.String("salonID", stats.SalonID), zap.Error(err))
	}
}
