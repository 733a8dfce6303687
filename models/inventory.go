package models

import "time"

// Inventory stock classifications.
const (
	StockOut = "out_of_stock"
	StockLow = "low_stock"
	StockIn  = "in_stock"
)

// InventoryItem represents one stocked product in a salon's back room.
type InventoryItem struct {
	ID           string    `bson:"id" json:"id"`
	SalonID      string    `bson:"salon_id" json:"salon_id"`
	Name         string    `bson:"name" json:"name"`
	Category     string    `bson:"category" json:"category"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	Unit         string    `bson:"unit" json:"unit"` // e.g., "bottle", "tube"
	LowThreshold int       `bson:"low_threshold" json:"low_threshold"`
	Price        float64   `bson:"price" json:"price"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// StockLevel classifies the item's quantity against its threshold.
func (i *InventoryItem) StockLevel() string {
	switch {
	case i.Quantity <= 0:
		return StockOut
	case i.Quantity <= i.LowThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// InventorySummary counts items per stock classification.
type InventorySummary struct {
	Total      int `json:"total"`
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}
