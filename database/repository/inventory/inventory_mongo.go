package inventoryRepo

import (
	"context"
	"fmt"
	"time"

	"salonora/database"
	"salonora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInventoryRepo implements InventoryRepository using MongoDB.
type MongoInventoryRepo struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepo creates a new instance of InventoryRepository using MongoDB.
func NewMongoInventoryRepo() InventoryRepository {
	repo := &MongoInventoryRepo{coll: database.Collection("inventory")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInventoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an item by its unique ID.
func (r *MongoInventoryRepo) GetByID(id string) (*models.InventoryItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.InventoryItem
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to fetch inventory item with id %s: %w", id, err)
	}
	return &item, nil
}

// GetBySalon lists all inventory items for a salon.
func (r *MongoInventoryRepo) GetBySalon(salonID string) ([]models.InventoryItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inventory for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	for cursor.Next(ctx) {
		var item models.InventoryItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Create inserts a new inventory item.
func (r *MongoInventoryRepo) Create(item *models.InventoryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

// Update modifies an existing inventory item.
func (r *MongoInventoryRepo) Update(item *models.InventoryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	item.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("failed to update inventory item with id %s: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inventory item with id %s not found", item.ID)
	}
	return nil
}

// Delete removes an inventory item.
func (r *MongoInventoryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inventory item with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inventory item with id %s not found", id)
	}
	return nil
}

// AdjustQuantity adds delta (possibly negative) to an item's quantity.
func (r *MongoInventoryRepo) AdjustQuantity(id string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to adjust quantity for item %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inventory item with id %s not found", id)
	}
	return nil
}
