package loyalty

import (
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoyaltyRepo struct {
	program     *models.LoyaltyProgram
	coins       int
	salonPoints int

	entries     []*models.PointsEntry
	coinDeltas  []int
	programSets []*models.LoyaltyProgram
}

func (f *fakeLoyaltyRepo) GetProgram(string) (*models.LoyaltyProgram, error) { return f.program, nil }

func (f *fakeLoyaltyRepo) SetProgram(p *models.LoyaltyProgram) error {
	f.programSets = append(f.programSets, p)
	return nil
}

func (f *fakeLoyaltyRepo) GetCoinBalance(string) (int, error)     { return f.coins, nil }
func (f *fakeLoyaltyRepo) GetSalonPoints(string, string) (int, error) { return f.salonPoints, nil }

func (f *fakeLoyaltyRepo) AddEntry(entry *models.PointsEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLoyaltyRepo) AdjustCoins(_ string, delta int) error {
	f.coinDeltas = append(f.coinDeltas, delta)
	return nil
}

func TestCombinedBalance(t *testing.T) {
	repo := &fakeLoyaltyRepo{coins: 30, salonPoints: 25}
	svc := &DefaultLoyaltyService{Repo: repo}

	balance, err := svc.CombinedBalance("user-1", "salon-1")
	require.NoError(t, err)
	assert.Equal(t, 55, balance)
}

func TestRedeemSalonPointsFirst(t *testing.T) {
	repo := &fakeLoyaltyRepo{salonPoints: 30, coins: 100}
	svc := &DefaultLoyaltyService{Repo: repo}

	err := svc.Redeem("user-1", "salon-1", "booking-1", 50)
	require.NoError(t, err)

	// All 30 salon points first, then 20 coins for the rest.
	require.Len(t, repo.entries, 1)
	assert.Equal(t, -30, repo.entries[0].Points)
	assert.Equal(t, "redeemed", repo.entries[0].Reason)
	require.Len(t, repo.coinDeltas, 1)
	assert.Equal(t, -20, repo.coinDeltas[0])
}

func TestRedeemSalonPointsOnly(t *testing.T) {
	repo := &fakeLoyaltyRepo{salonPoints: 80}
	svc := &DefaultLoyaltyService{Repo: repo}

	err := svc.Redeem("user-1", "salon-1", "booking-1", 50)
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, -50, repo.entries[0].Points)
	assert.Empty(t, repo.coinDeltas)
}

func TestRedeemNothing(t *testing.T) {
	repo := &fakeLoyaltyRepo{}
	svc := &DefaultLoyaltyService{Repo: repo}

	require.NoError(t, svc.Redeem("user-1", "salon-1", "booking-1", 0))
	assert.Empty(t, repo.entries)
	assert.Empty(t, repo.coinDeltas)
}

func TestAccrueDefaultRate(t *testing.T) {
	repo := &fakeLoyaltyRepo{}
	svc := &DefaultLoyaltyService{Repo: repo}

	require.NoError(t, svc.Accrue("user-1", "salon-1", "booking-1", 200))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, 10, repo.entries[0].Points)
	assert.Equal(t, "earned", repo.entries[0].Reason)
}

func TestAccrueProgramRate(t *testing.T) {
	repo := &fakeLoyaltyRepo{program: &models.LoyaltyProgram{
		SalonID: "salon-1", PointValue: 0.05, EarnPercent: 10,
	}}
	svc := &DefaultLoyaltyService{Repo: repo}

	require.NoError(t, svc.Accrue("user-1", "salon-1", "booking-1", 130))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, 13, repo.entries[0].Points)
}

func TestAccrueSkipsTinyPayments(t *testing.T) {
	repo := &fakeLoyaltyRepo{}
	svc := &DefaultLoyaltyService{Repo: repo}

	// 5% of 10 rounds down to zero points; no ledger noise.
	require.NoError(t, svc.Accrue("user-1", "salon-1", "booking-1", 10))
	assert.Empty(t, repo.entries)
}

func TestSetProgramValidation(t *testing.T) {
	repo := &fakeLoyaltyRepo{}
	svc := &DefaultLoyaltyService{Repo: repo}

	assert.Error(t, svc.SetProgram(&models.LoyaltyProgram{PointValue: 0}))
	assert.Error(t, svc.SetProgram(&models.LoyaltyProgram{PointValue: 0.05, MaxDiscountPercent: 120}))

	require.NoError(t, svc.SetProgram(&models.LoyaltyProgram{
		SalonID: "salon-1", PointValue: 0.05, MinPointsToRedeem: 50, MaxDiscountPercent: 20, EarnPercent: 5,
	}))
	assert.Len(t, repo.programSets, 1)
}
