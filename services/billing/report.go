package billing

import (
	"fmt"
	"time"

	"salonora/models"
)

// RevenueReport aggregates a salon's completed bookings into twelve monthly
// buckets. Revenue counts amounts actually paid, so discounts are already
// reflected in the totals.
func (s *DefaultBillingService) RevenueReport(salonID string, year int) (*models.RevenueReport, error) {
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("invalid report year %d", year)
	}

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)
	rows, err := s.Bookings.GetBySalonBetween(salonID, from, to, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	report := &models.RevenueReport{
		SalonID: salonID,
		Year:    year,
		Months:  make([]models.MonthlyRevenue, 12),
	}
	for i := range report.Months {
		report.Months[i].Month = time.Month(i + 1)
	}

	for _, b := range rows {
		d, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			continue
		}
		bucket := &report.Months[int(d.Month())-1]
		bucket.Revenue += b.PricePaid
		bucket.Bookings++
		report.Total += b.PricePaid
	}
	return report, nil
}
