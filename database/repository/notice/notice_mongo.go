package noticeRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recreio/database"
	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no notice matches the given ID.
var ErrNotFound = errors.New("notice not found")

// MongoNoticeRepo implements NoticeRepository using MongoDB.
type MongoNoticeRepo struct {
	coll *mongo.Collection
}

// NewMongoNoticeRepo creates a new instance of NoticeRepository using MongoDB.
func NewMongoNoticeRepo() NoticeRepository {
	coll := database.DB().Collection("notices")
	repo := &MongoNoticeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique (type, entityId) index is what makes deduplication atomic under
// concurrent writers.
func (r *MongoNoticeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "entityId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts the notice unless one already exists for the same
// (type, entityId) pair.
func (r *MongoNoticeRepo) CreateIfAbsent(notice *models.Notice) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"type": notice.Type, "entityId": notice.EntityID}
	update := bson.M{"$setOnInsert": notice}
	opts := options.Update().SetUpsert(true)

	result, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create notice: %w", err)
	}
	return result.UpsertedCount > 0, nil
}

// GetAll retrieves all notices, newest first.
func (r *MongoNoticeRepo) GetAll() ([]models.Notice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer cursor.Close(ctx)

	var notices []models.Notice
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("failed to decode notices: %w", err)
	}
	return notices, nil
}

// Delete removes a notice by its ID.
func (r *MongoNoticeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete notice with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every notice.
func (r *MongoNoticeRepo) DeleteAll() error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete notices: %w", err)
	}
	return nil
}
