package cashRepo

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

// ErrNotFound is returned when no drawer session matches the given ID.
var ErrNotFound = errors.New("cash session not found")

// ErrAlreadyClosed is returned when closing or withdrawing from a drawer
// that is no longer open.
var ErrAlreadyClosed = errors.New("cash session already closed")

// MongoCashSessionRepo implements CashSessionRepository using MongoDB.
type MongoCashSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoCashSessionRepo creates a new instance of CashSessionRepository using MongoDB.
func NewMongoCashSessionRepo() CashSessionRepository {
	coll := database.DB().Collection("cash_sessions")
	repo := &MongoCashSessionRepo{coll: coll}

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
// partial unique index on open status enforces the single-open-drawer
// invariant at the store level.
func (r *MongoCashSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.CashSessionOpen}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetOpen retrieves the single open drawer, or nil when none is open.
func (r *MongoCashSessionRepo) GetOpen() (*models.CashSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.CashSession
	err := r.coll.FindOne(ctx, bson.M{"status": models.CashSessionOpen}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open cash session: %w", err)
	}
	return &session, nil
}

// GetByID retrieves a drawer session by its unique ID.
func (r *MongoCashSessionRepo) GetByID(id string) (*models.CashSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.CashSession
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cash session with id %s: %w", id, err)
	}
	return &session, nil
}

// Create inserts a new open drawer document.
func (r *MongoCashSessionRepo) Create(session *models.CashSession) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if session.Withdrawals == nil {
		session.Withdrawals = []models.Withdrawal{}
	}

	_, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create cash session: %w", err)
	}
	return nil
}

// AddWithdrawal appends a withdrawal to an open drawer. The status guard in
// the filter keeps a close racing with a withdrawal from losing either write.
func (r *MongoCashSessionRepo) AddWithdrawal(id string, withdrawal models.Withdrawal) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.CashSessionOpen},
		bson.M{"$push": bson.M{"withdrawals": withdrawal}},
	)
	if err != nil {
		return fmt.Errorf("failed to register withdrawal on cash session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
		return ErrAlreadyClosed
	}
	return nil
}

// Close persists the reconciliation and flips status to closed.
func (r *MongoCashSessionRepo) Close(id string, closure Closure) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":             models.CashSessionClosed,
		"closedAt":           closure.ClosedAt,
		"closedBy":           closure.ClosedBy,
		"countedBalance":     closure.CountedBalance,
		"expectedCashAmount": closure.ExpectedCashAmount,
		"difference":         closure.Difference,
		"finalCashSales":     closure.FinalCashSales,
	}}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.CashSessionOpen},
		update,
	)
	if err != nil {
		return fmt.Errorf("failed to close cash session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		if _, getErr := r.GetByID(id); getErr != nil {
			return getErr
		}
		return ErrAlreadyClosed
	}
	return nil
}
