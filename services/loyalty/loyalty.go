package loyalty

import (
	"fmt"

	loyaltyRepo "salonora/database/repository/loyalty"
	"salonora/models"
	"salonora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoyaltyService owns point balances, accrual and redemption.
type LoyaltyService interface {
	// CombinedBalance adds the user's platform coins and per-salon points;
	// that combined figure is what a redemption can draw on.
	CombinedBalance(userID, salonID string) (int, error)
	// Program returns the salon's redemption settings, nil when unset.
	Program(salonID string) (*models.LoyaltyProgram, error)
	SetProgram(p *models.LoyaltyProgram) error
	// Redeem deducts points for a booking, drawing from salon points first
	// and platform coins for the rest.
	Redeem(userID, salonID, bookingID string, points int) error
	// Accrue awards earned points for a completed payment.
	Accrue(userID, salonID, bookingID string, pricePaid float64) error
}

// DefaultLoyaltyService implements LoyaltyService.
type DefaultLoyaltyService struct {
	Repo loyaltyRepo.LoyaltyRepository
}

// DefaultEarnPercent applies when a salon has no configured program.
const DefaultEarnPercent = 5.0

func (s *DefaultLoyaltyService) CombinedBalance(userID, salonID string) (int, error) {
	coins, err := s.Repo.GetCoinBalance(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch coin balance: %w", err)
	}
	points, err := s.Repo.GetSalonPoints(userID, salonID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch salon points: %w", err)
	}
	return coins + points, nil
}

func (s *DefaultLoyaltyService) Program(salonID string) (*models.LoyaltyProgram, error) {
	return s.Repo.GetProgram(salonID)
}

func (s *DefaultLoyaltyService) SetProgram(p *models.LoyaltyProgram) error {
	if p.PointValue <= 0 {
		return fmt.Errorf("point value must be positive")
	}
	if p.MaxDiscountPercent < 0 || p.MaxDiscountPercent > 100 {
		return fmt.Errorf("max discount percent must be within [0, 100]")
	}
	return s.Repo.SetProgram(p)
}

// Redeem deducts points, salon points first then platform coins.
func (s *DefaultLoyaltyService) Redeem(userID, salonID, bookingID string, points int) error {
	if points <= 0 {
		return nil
	}

	salonBalance, err := s.Repo.GetSalonPoints(userID, salonID)
	if err != nil {
		return fmt.Errorf("failed to fetch salon points: %w", err)
	}

	fromSalon := points
	if fromSalon > salonBalance {
		fromSalon = salonBalance
	}
	fromCoins := points - fromSalon

	if fromSalon > 0 {
		entry := &models.PointsEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			SalonID:   salonID,
			BookingID: bookingID,
			Points:    -fromSalon,
			Reason:    "redeemed",
		}
		if err := s.Repo.AddEntry(entry); err != nil {
			return fmt.Errorf("failed to record redemption: %w", err)
		}
	}
	if fromCoins > 0 {
		if err := s.Repo.AdjustCoins(userID, -fromCoins); err != nil {
			return fmt.Errorf("failed to deduct coins: %w", err)
		}
	}

	utils.GetLogger().Info("loyalty points redeemed",
		zap.String("userID", userID),
		zap.String("bookingID", bookingID),
		zap.Int("points", points))
	return nil
}

// Accrue awards earned points as a percentage of the amount paid.
func (s *DefaultLoyaltyService) Accrue(userID, salonID, bookingID string, pricePaid float64) error {
	if pricePaid <= 0 {
		return nil
	}

	earnPercent := DefaultEarnPercent
	if p, err := s.Repo.GetProgram(salonID); err == nil && p != nil && p.EarnPercent > 0 {
		earnPercent = p.EarnPercent
	}

	earned := int(pricePaid * earnPercent / 100)
	if earned <= 0 {
		return nil
	}

	entry := &models.PointsEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		SalonID:   salonID,
		BookingID: bookingID,
		Points:    earned,
		Reason:    "earned",
	}
	if err := s.Repo.AddEntry(entry); err != nil {
		return fmt.Errorf("failed to record accrual: %w", err)
	}
	return nil
}
