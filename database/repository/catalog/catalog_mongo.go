package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	products *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		services: database.Collection("services"),
		products: database.Collection("products"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	svcIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "category", Value: 1}}},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, svcIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	prodIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}}},
	}
	if _, err := r.products.Indexes().CreateMany(ctx, prodIndexes); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}

// GetServiceByID retrieves a single service document.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.SalonService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.SalonService
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetServicesBySalon lists active services for one salon.
func (r *MongoCatalogRepo) GetServicesBySalon(salonID string) ([]models.SalonService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"salon_id": salonID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var services []models.SalonService
	for cursor.Next(ctx) {
		var s models.SalonService
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetServicesByIDs fetches services by ID, preserving the order of ids.
func (r *MongoCatalogRepo) GetServicesByIDs(ids []string) ([]models.SalonService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]models.SalonService, len(ids))
	for cursor.Next(ctx) {
		var s models.SalonService
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		byID[s.ID] = s
	}

	ordered := make([]models.SalonService, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("service with id %s not found", id)
		}
		ordered = append(ordered, s)
	}
	return ordered, nil
}

// CreateService inserts a new service document.
func (r *MongoCatalogRepo) CreateService(svc *models.SalonService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService modifies an existing service document.
func (r *MongoCatalogRepo) UpdateService(svc *models.SalonService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.services.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a service document.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// GetProductsBySalon lists active products for one salon.
func (r *MongoCatalogRepo) GetProductsBySalon(salonID string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{"salon_id": salonID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// CreateProduct inserts a new product document.
func (r *MongoCatalogRepo) CreateProduct(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct modifies an existing product document.
func (r *MongoCatalogRepo) UpdateProduct(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.products.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product with id %s not found", p.ID)
	}
	return nil
}

// DeleteProduct removes a product document.
func (r *MongoCatalogRepo) DeleteProduct(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.products.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product with id %s not found", id)
	}
	return nil
}
