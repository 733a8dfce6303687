package inventory

import (
	"fmt"

	inventoryRepo "salonora/database/repository/inventory"
	"salonora/models"

	"github.com/google/uuid"
)

// InventoryService owns back-room stock management for a salon.
type InventoryService interface {
	// List returns a salon's items, optionally filtered by stock level
	// ("in_stock", "low_stock", "out_of_stock"; empty for all).
	List(salonID, level string) ([]models.InventoryItem, error)
	// Summary counts a salon's items per stock classification.
	Summary(salonID string) (*models.InventorySummary, error)
	Create(item *models.InventoryItem) (*models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	Delete(id string) error
	// Adjust adds delta (possibly negative) to an item's quantity.
	Adjust(id string, delta int) error
}

// DefaultInventoryService implements InventoryService.
type DefaultInventoryService struct {
	Repo inventoryRepo.InventoryRepository
}

func (s *DefaultInventoryService) List(salonID, level string) ([]models.InventoryItem, error) {
	items, err := s.Repo.GetBySalon(salonID)
	if err != nil {
		return nil, err
	}
	if level == "" {
		return items, nil
	}

	switch level {
	case models.StockIn, models.StockLow, models.StockOut:
	default:
		return nil, fmt.Errorf("unknown stock level %q", level)
	}

	filtered := items[:0]
	for _, item := range items {
		if item.StockLevel() == level {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *DefaultInventoryService) Summary(salonID string) (*models.InventorySummary, error) {
	items, err := s.Repo.GetBySalon(salonID)
	if err != nil {
		return nil, err
	}
	return Summarize(items), nil
}

// Summarize counts items per stock classification.
func Summarize(items []models.InventoryItem) *models.InventorySummary {
	summary := &models.InventorySummary{Total: len(items)}
	for _, item := range items {
		switch item.StockLevel() {
		case models.StockOut:
			summary.OutOfStock++
		case models.StockLow:
			summary.LowStock++
		default:
			summary.InStock++
		}
	}
	return summary
}

func (s *DefaultInventoryService) Create(item *models.InventoryItem) (*models.InventoryItem, error) {
	if item.Name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if item.LowThreshold < 0 {
		return nil, fmt.Errorf("low-stock threshold cannot be negative")
	}
	item.ID = uuid.New().String()
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultInventoryService) Update(item *models.InventoryItem) error {
	return s.Repo.Update(item)
}

func (s *DefaultInventoryService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultInventoryService) Adjust(id string, delta int) error {
	return s.Repo.AdjustQuantity(id, delta)
}
