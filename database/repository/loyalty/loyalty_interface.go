package loyaltyRepo

import "salonora/models"

// LoyaltyRepository defines data access for loyalty balances and settings.
type LoyaltyRepository interface {
	// GetProgram retrieves a salon's loyalty settings, nil when unset.
	GetProgram(salonID string) (*models.LoyaltyProgram, error)
	// SetProgram upserts a salon's loyalty settings.
	SetProgram(p *models.LoyaltyProgram) error

	// GetCoinBalance returns the user's platform-wide coin balance
	// (zero when no record exists).
	GetCoinBalance(userID string) (int, error)
	// GetSalonPoints returns the user's per-salon point balance
	// (zero when no record exists).
	GetSalonPoints(userID, salonID string) (int, error)

	// AddEntry appends a ledger entry and adjusts the per-salon balance
	// by entry.Points (negative for redemptions).
	AddEntry(entry *models.PointsEntry) error
	// AdjustCoins adds delta (possibly negative) to the coin balance.
	AdjustCoins(userID string, delta int) error
}
