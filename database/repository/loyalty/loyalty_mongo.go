package loyaltyRepo

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

// MongoLoyaltyRepo implements LoyaltyRepository using MongoDB.
type MongoLoyaltyRepo struct {
	programs *mongo.Collection
	coins    *mongo.Collection
	points   *mongo.Collection
	ledger   *mongo.Collection
}

// NewMongoLoyaltyRepo creates a new instance of LoyaltyRepository using MongoDB.
func NewMongoLoyaltyRepo() LoyaltyRepository {
	repo := &MongoLoyaltyRepo{
		programs: database.Collection("loyalty_programs"),
		coins:    database.Collection("coin_balances"),
		points:   database.Collection("salon_points"),
		ledger:   database.Collection("points_ledger"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLoyaltyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.programs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "salon_id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create program index: %w", err)
	}
	if _, err := r.coins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create coin index: %w", err)
	}
	if _, err := r.points.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "salon_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create points index: %w", err)
	}
	return nil
}

// GetProgram retrieves a salon's loyalty settings, nil when unset.
func (r *MongoLoyaltyRepo) GetProgram(salonID string) (*models.LoyaltyProgram, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.LoyaltyProgram
	err := r.programs.FindOne(ctx, bson.M{"salon_id": salonID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch loyalty program for salon %s: %w", salonID, err)
	}
	return &p, nil
}

// SetProgram upserts a salon's loyalty settings.
func (r *MongoLoyaltyRepo) SetProgram(p *models.LoyaltyProgram) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.programs.ReplaceOne(ctx, bson.M{"salon_id": p.SalonID}, p, opts); err != nil {
		return fmt.Errorf("failed to save loyalty program for salon %s: %w", p.SalonID, err)
	}
	return nil
}

// GetCoinBalance returns the user's platform-wide coin balance.
func (r *MongoLoyaltyRepo) GetCoinBalance(userID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bal models.CoinBalance
	err := r.coins.FindOne(ctx, bson.M{"user_id": userID}).Decode(&bal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch coin balance for user %s: %w", userID, err)
	}
	return bal.Balance, nil
}

// GetSalonPoints returns the user's per-salon point balance.
func (r *MongoLoyaltyRepo) GetSalonPoints(userID, salonID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pts models.SalonPoints
	err := r.points.FindOne(ctx, bson.M{"user_id": userID, "salon_id": salonID}).Decode(&pts)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch salon points for user %s: %w", userID, err)
	}
	return pts.Balance, nil
}

// AddEntry appends a ledger entry and adjusts the per-salon balance.
func (r *MongoLoyaltyRepo) AddEntry(entry *models.PointsEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.ledger.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append points entry: %w", err)
	}

	filter := bson.M{"user_id": entry.UserID, "salon_id": entry.SalonID}
	update := bson.M{
		"$inc": bson.M{"balance": entry.Points},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.points.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to adjust salon points for user %s: %w", entry.UserID, err)
	}
	return nil
}

// AdjustCoins adds delta (possibly negative) to the coin balance.
func (r *MongoLoyaltyRepo) AdjustCoins(userID string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$inc": bson.M{"balance": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coins.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to adjust coins for user %s: %w", userID, err)
	}
	return nil
}
