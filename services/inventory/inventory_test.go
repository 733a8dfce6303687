package inventory

import (
	"testing"

	"salonora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepo struct {
	items   []models.InventoryItem
	adjusts map[string]int
}

func (f *fakeInventoryRepo) GetByID(id string) (*models.InventoryItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			cp := item
			return &cp, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeInventoryRepo) GetBySalon(salonID string) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	for _, item := range f.items {
		if item.SalonID == salonID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Create(item *models.InventoryItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeInventoryRepo) Update(*models.InventoryItem) error { return nil }
func (f *fakeInventoryRepo) Delete(string) error                { return nil }

func (f *fakeInventoryRepo) AdjustQuantity(id string, delta int) error {
	if f.adjusts == nil {
		f.adjusts = make(map[string]int)
	}
	f.adjusts[id] += delta
	return nil
}

func stockedRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: []models.InventoryItem{
		{ID: "i1", SalonID: "salon-1", Name: "Shampoo", Quantity: 0, LowThreshold: 5},
		{ID: "i2", SalonID: "salon-1", Name: "Conditioner", Quantity: 5, LowThreshold: 5},
		{ID: "i3", SalonID: "salon-1", Name: "Hair dye", Quantity: 6, LowThreshold: 5},
		{ID: "i4", SalonID: "salon-1", Name: "Towels", Quantity: -2, LowThreshold: 3},
		{ID: "i5", SalonID: "salon-2", Name: "Elsewhere", Quantity: 1, LowThreshold: 5},
	}}
}

func TestStockLevelBoundaries(t *testing.T) {
	// Zero or negative quantity is out of stock regardless of threshold.
	out := models.InventoryItem{Quantity: 0, LowThreshold: 5}
	assert.Equal(t, models.StockOut, out.StockLevel())
	neg := models.InventoryItem{Quantity: -2, LowThreshold: 5}
	assert.Equal(t, models.StockOut, neg.StockLevel())

	// Exactly at the threshold is low, one above is in stock.
	low := models.InventoryItem{Quantity: 5, LowThreshold: 5}
	assert.Equal(t, models.StockLow, low.StockLevel())
	in := models.InventoryItem{Quantity: 6, LowThreshold: 5}
	assert.Equal(t, models.StockIn, in.StockLevel())
}

func TestListLevelFilter(t *testing.T) {
	svc := &DefaultInventoryService{Repo: stockedRepo()}

	all, err := svc.List("salon-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	outOfStock, err := svc.List("salon-1", models.StockOut)
	require.NoError(t, err)
	require.Len(t, outOfStock, 2)
	assert.Equal(t, "Shampoo", outOfStock[0].Name)
	assert.Equal(t, "Towels", outOfStock[1].Name)

	lowStock, err := svc.List("salon-1", models.StockLow)
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Conditioner", lowStock[0].Name)

	_, err = svc.List("salon-1", "empty-ish")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc := &DefaultInventoryService{Repo: stockedRepo()}

	summary, err := svc.Summary("salon-1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.InStock)
	assert.Equal(t, 1, summary.LowStock)
	assert.Equal(t, 2, summary.OutOfStock)
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := &DefaultInventoryService{Repo: repo}

	_, err := svc.Create(&models.InventoryItem{SalonID: "salon-1"})
	assert.Error(t, err)
	_, err = svc.Create(&models.InventoryItem{SalonID: "salon-1", Name: "Wax", LowThreshold: -1})
	assert.Error(t, err)

	created, err := svc.Create(&models.InventoryItem{SalonID: "salon-1", Name: "Wax", Quantity: 3, LowThreshold: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.items, 1)
}

func TestAdjust(t *testing.T) {
	repo := stockedRepo()
	svc := &DefaultInventoryService{Repo: repo}

	require.NoError(t, svc.Adjust("i3", -2))
	require.NoError(t, svc.Adjust("i3", 1))
	assert.Equal(t, -1, repo.adjusts["i3"])
}
