package invoiceRepo

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

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	repo := &MongoInvoiceRepo{coll: database.Collection("invoices")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_group", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to fetch invoice with id %s: %w", id, err)
	}
	return &inv, nil
}

// GetByBookingGroup retrieves the invoice for a booking group, nil when absent.
func (r *MongoInvoiceRepo) GetByBookingGroup(groupID string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inv models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"booking_group": groupID}).Decode(&inv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch invoice for group %s: %w", groupID, err)
	}
	return &inv, nil
}

// GetBySalonBetween lists invoices for a salon created in [from, to].
func (r *MongoInvoiceRepo) GetBySalonBetween(salonID string, from, to string) ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	fromT, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	toT, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	// Include the whole final day.
	toT = toT.AddDate(0, 0, 1)

	filter := bson.M{
		"salon_id":   salonID,
		"created_at": bson.M{"$gte": fromT, "$lt": toT},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// Create inserts a new invoice record.
func (r *MongoInvoiceRepo) Create(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// Update modifies an existing invoice record.
func (r *MongoInvoiceRepo) Update(inv *models.Invoice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inv.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": inv.ID}, bson.M{"$set": inv})
	if err != nil {
		return fmt.Errorf("failed to update invoice with id %s: %w", inv.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invoice with id %s not found", inv.ID)
	}
	return nil
}
