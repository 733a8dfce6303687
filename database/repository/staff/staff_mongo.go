package staffRepo

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

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	staff      *mongo.Collection
	attendance *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	repo := &MongoStaffRepo{
		staff:      database.Collection("staff"),
		attendance: database.Collection("attendance"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	staffIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}}},
	}
	if _, err := r.staff.Indexes().CreateMany(ctx, staffIndexes); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}

	attIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "date", Value: 1}}},
	}
	if _, err := r.attendance.Indexes().CreateMany(ctx, attIndexes); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a staff member by ID.
func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var st models.Staff
	if err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&st); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &st, nil
}

// GetBySalon lists active staff for a salon.
func (r *MongoStaffRepo) GetBySalon(salonID string) ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.staff.Find(ctx, bson.M{"salon_id": salonID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var members []models.Staff
	for cursor.Next(ctx) {
		var st models.Staff
		if err := cursor.Decode(&st); err != nil {
			return nil, fmt.Errorf("failed to decode staff: %w", err)
		}
		members = append(members, st)
	}
	return members, nil
}

// Create inserts a new staff record.
func (r *MongoStaffRepo) Create(st *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now

	if _, err := r.staff.InsertOne(ctx, st); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

// Update modifies an existing staff record.
func (r *MongoStaffRepo) Update(st *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	st.UpdatedAt = time.Now()
	result, err := r.staff.UpdateOne(ctx, bson.M{"id": st.ID}, bson.M{"$set": st})
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", st.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", st.ID)
	}
	return nil
}

// Delete removes a staff record.
func (r *MongoStaffRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.staff.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

// OpenAttendance returns the open attendance record for the date, or nil.
func (r *MongoStaffRepo) OpenAttendance(staffID, date string) (*models.Attendance, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"staff_id": staffID, "date": date, "clock_out": bson.M{"$exists": false}}
	var a models.Attendance
	if err := r.attendance.FindOne(ctx, filter).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch open attendance for staff %s: %w", staffID, err)
	}
	return &a, nil
}

// CreateAttendance inserts a clock-in record.
func (r *MongoStaffRepo) CreateAttendance(a *models.Attendance) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.attendance.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

// CloseAttendance sets the clock-out time on an attendance record.
func (r *MongoStaffRepo) CloseAttendance(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"clock_out": time.Now()}}
	result, err := r.attendance.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to close attendance with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("attendance with id %s not found", id)
	}
	return nil
}

// AttendanceBySalonAndDate lists attendance records for a salon day.
func (r *MongoStaffRepo) AttendanceBySalonAndDate(salonID, date string) ([]models.Attendance, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.attendance.Find(ctx, bson.M{"salon_id": salonID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve attendance for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var records []models.Attendance
	for cursor.Next(ctx) {
		var a models.Attendance
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, nil
}
