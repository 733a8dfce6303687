package coupon

import (
	"testing"
	"time"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepo struct {
	coupons map[string]*models.Coupon
	created []*models.Coupon
}

func (f *fakeCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCouponRepo) GetBySalon(string) ([]models.Coupon, error) { return nil, nil }

func (f *fakeCouponRepo) Create(c *models.Coupon) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCouponRepo) Update(*models.Coupon) error { return nil }
func (f *fakeCouponRepo) Delete(string) error         { return nil }

func newTestCouponService(coupons ...*models.Coupon) (*DefaultCouponService, *fakeCouponRepo) {
	repo := &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
	for _, c := range coupons {
		repo.coupons[c.Code] = c
	}
	return &DefaultCouponService{Repo: repo}, repo
}

func TestValidateHappyPath(t *testing.T) {
	svc, _ := newTestCouponService(&models.Coupon{
		ID: "c1", Code: "WELCOME10", Kind: models.CouponKindPercentage, Value: 10, Active: true,
	})

	state, err := svc.Validate("WELCOME10", "salon-1", 150)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", state.Code)
	assert.Equal(t, models.CouponKindPercentage, state.Kind)
	assert.Equal(t, 15.0, state.DiscountAmount)
}

func TestValidateRejections(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	svc, _ := newTestCouponService(
		&models.Coupon{ID: "c1", Code: "INACTIVE", Kind: models.CouponKindFixed, Value: 5, Active: false},
		&models.Coupon{ID: "c2", Code: "EXPIRED", Kind: models.CouponKindFixed, Value: 5, Active: true, ValidTo: &past},
		&models.Coupon{ID: "c3", Code: "NOTYET", Kind: models.CouponKindFixed, Value: 5, Active: true, ValidFrom: &future},
		&models.Coupon{ID: "c4", Code: "ELSEWHERE", Kind: models.CouponKindFixed, Value: 5, Active: true, SalonID: "salon-2"},
		&models.Coupon{ID: "c5", Code: "BIGSPEND", Kind: models.CouponKindFixed, Value: 5, Active: true, MinOrderValue: 200},
	)

	cases := []struct {
		name string
		code string
	}{
		{"empty code", ""},
		{"unknown code", "NOPE"},
		{"inactive", "INACTIVE"},
		{"expired", "EXPIRED"},
		{"not yet active", "NOTYET"},
		{"other salon", "ELSEWHERE"},
		{"below minimum order", "BIGSPEND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Validate(tc.code, "salon-1", 150)
			require.Error(t, err)
			_, ok := err.(*ValidationError)
			assert.True(t, ok)
		})
	}
}

func TestValidateSalonScope(t *testing.T) {
	// A coupon with no salon scope is valid anywhere.
	svc, _ := newTestCouponService(&models.Coupon{
		ID: "c1", Code: "GLOBAL", Kind: models.CouponKindFixed, Value: 5, Active: true,
	})

	state, err := svc.Validate("GLOBAL", "salon-9", 100)
	require.NoError(t, err)
	assert.Equal(t, 5.0, state.DiscountAmount)
}

func TestDiscountForClamps(t *testing.T) {
	fixed := &models.Coupon{Kind: models.CouponKindFixed, Value: 500}
	assert.Equal(t, 150.0, DiscountFor(fixed, 150))

	pct := &models.Coupon{Kind: models.CouponKindPercentage, Value: 25}
	assert.Equal(t, 25.0, DiscountFor(pct, 100))
}

func TestCreateValidation(t *testing.T) {
	svc, repo := newTestCouponService()

	_, err := svc.Create(&models.Coupon{Code: "X", Kind: "bogus", Value: 10})
	assert.Error(t, err)
	_, err = svc.Create(&models.Coupon{Code: "X", Kind: models.CouponKindFixed, Value: 0})
	assert.Error(t, err)
	_, err = svc.Create(&models.Coupon{Code: "X", Kind: models.CouponKindPercentage, Value: 150})
	assert.Error(t, err)

	created, err := svc.Create(&models.Coupon{Code: "OK", Kind: models.CouponKindPercentage, Value: 15})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.Len(t, repo.created, 1)
}
