package inventoryRepo

import "salonora/models"

// InventoryRepository defines methods for inventory data access.
type InventoryRepository interface {
	// GetByID retrieves an item by its unique ID.
	GetByID(id string) (*models.InventoryItem, error)
	// GetBySalon lists all inventory items for a salon.
	GetBySalon(salonID string) ([]models.InventoryItem, error)
	// Create inserts a new inventory item.
	Create(item *models.InventoryItem) error
	// Update modifies an existing inventory item.
	Update(item *models.InventoryItem) error
	// Delete removes an inventory item.
	Delete(id string) error
	// AdjustQuantity adds delta (possibly negative) to an item's quantity.
	AdjustQuantity(id string, delta int) error
}
