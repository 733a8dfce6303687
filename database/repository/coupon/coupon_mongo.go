package couponRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salonora/database"
	"salonora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new instance of CouponRepository using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	repo := &MongoCouponRepo{coll: database.Collection("coupons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByCode retrieves a coupon by its code, nil when absent. Codes are
// stored and matched uppercase.
func (r *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": strings.ToUpper(code)}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon %s: %w", code, err)
	}
	return &c, nil
}

// GetBySalon lists coupons scoped to a salon.
func (r *MongoCouponRepo) GetBySalon(salonID string) ([]models.Coupon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"salon_id": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve coupons for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	for cursor.Next(ctx) {
		var c models.Coupon
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// Create inserts a new coupon record.
func (r *MongoCouponRepo) Create(c *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	c.Code = strings.ToUpper(c.Code)
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// Update modifies an existing coupon record.
func (r *MongoCouponRepo) Update(c *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update coupon with id %s: %w", c.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon with id %s not found", c.ID)
	}
	return nil
}

// Delete removes a coupon record.
func (r *MongoCouponRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("coupon with id %s not found", id)
	}
	return nil
}
