package repositories

import (
	"context"
	"time"

	"github.com/medetk/castlink/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository defines the interface for the append-only activity stream
type ActivityRepository interface {
	RecordActivity(ctx context.Context, event *models.ActivityEvent) error
	GetRecentActivity(ctx context.Context, profileID uint, limit int64) ([]models.ActivityEvent, error)
}

// MongoActivityRepository implements ActivityRepository for MongoDB
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoActivityRepository
func NewMongoActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{collection: db.Collection("activity")}
}

// RecordActivity appends one event to the stream
func (r *MongoActivityRepository) RecordActivity(ctx context.Context, event *models.ActivityEvent) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// GetRecentActivity returns a profile's latest events, newest first
func (r *MongoActivityRepository) GetRecentActivity(ctx context.Context, profileID uint, limit int64) ([]models.ActivityEvent, error) {
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"profile_id": profileID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.ActivityEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
