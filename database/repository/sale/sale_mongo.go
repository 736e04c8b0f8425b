package saleRepo

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

// ErrNotFound is returned when no sale record matches the given ID.
var ErrNotFound = errors.New("sale record not found")

// MongoSaleRepo implements SaleRepository using MongoDB.
type MongoSaleRepo struct {
	coll *mongo.Collection
}

// NewMongoSaleRepo creates a new instance of SaleRepository using MongoDB.
func NewMongoSaleRepo() SaleRepository {
	coll := database.DB().Collection("sales")
	repo := &MongoSaleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSaleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "finalizedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a sale record by its unique ID.
func (r *MongoSaleRepo) GetByID(id string) (*models.SaleRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sale models.SaleRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sale)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sale with id %s: %w", id, err)
	}
	return &sale, nil
}

// ListSince retrieves sales finalized at or after the given instant.
func (r *MongoSaleRepo) ListSince(since time.Time) ([]models.SaleRecord, error) {
	return r.list(bson.M{"finalizedAt": bson.M{"$gte": since}})
}

// ListRange retrieves sales finalized within [from, to).
func (r *MongoSaleRepo) ListRange(from, to time.Time) ([]models.SaleRecord, error) {
	return r.list(bson.M{"finalizedAt": bson.M{"$gte": from, "$lt": to}})
}

func (r *MongoSaleRepo) list(filter bson.M) ([]models.SaleRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "finalizedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []models.SaleRecord
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}
	return sales, nil
}
