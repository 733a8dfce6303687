package salonRepo

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

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo() SalonRepository {
	coll := database.Collection("salons")
	repo := &MongoSalonRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSalonRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new salon document.
func (r *MongoSalonRepo) Create(salon *models.Salon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, salon)
	if err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

// Update modifies an existing salon document.
func (r *MongoSalonRepo) Update(salon *models.Salon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	salon.UpdatedAt = time.Now()
	filter := bson.M{"id": salon.ID}
	update := bson.M{"$set": salon}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", salon.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("salon with id %s not found", salon.ID)
	}
	return nil
}

// Delete removes a salon document by its ID.
func (r *MongoSalonRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete salon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("salon with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a salon by its unique ID.
func (r *MongoSalonRepo) GetByID(id string) (*models.Salon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		return nil, fmt.Errorf("failed to fetch salon with id %s: %w", id, err)
	}
	return &salon, nil
}

// GetAll retrieves all active salons.
func (r *MongoSalonRepo) GetAll() ([]models.Salon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve salons: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	for cursor.Next(ctx) {
		var s models.Salon
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode salon: %w", err)
		}
		salons = append(salons, s)
	}
	return salons, nil
}
