package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"recreio/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSessionRepo implements SessionRepository using MongoDB. It also holds
// the products collection so cancellations can restock transactionally.
type MongoSessionRepo struct {
	coll        *mongo.Collection
	productColl *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	db := database.DB()
	repo := &MongoSessionRepo{
		coll:        db.Collection("active_sessions"),
		productColl: db.Collection("products"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
