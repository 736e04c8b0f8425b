// File: database/repository/session/sessionMongoCrud.go
package sessionRepo

import (
	"errors"
	"fmt"
	"time"

	"recreio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no session matches the given ID.
var ErrNotFound = errors.New("active session not found")

// Create inserts a new active-session document.
func (r *MongoSessionRepo) Create(session *models.ActiveSession) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if session.Consumption == nil {
		session.Consumption = []models.ConsumptionItem{}
	}

	_, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create active session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by its unique ID.
func (r *MongoSessionRepo) GetByID(id string) (*models.ActiveSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.ActiveSession
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session with id %s: %w", id, err)
	}
	return &session, nil
}

// GetAll retrieves all active sessions ordered by start time.
func (r *MongoSessionRepo) GetAll() ([]models.ActiveSession, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.ActiveSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode active sessions: %w", err)
	}
	return sessions, nil
}

// UpdateConsumption replaces the session's consumption list.
func (r *MongoSessionRepo) UpdateConsumption(id string, consumption []models.ConsumptionItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if consumption == nil {
		consumption = []models.ConsumptionItem{}
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"consumption": consumption}},
	)
	if err != nil {
		return fmt.Errorf("failed to update consumption for session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTime raises the contracted minutes. Adding time creates a new balance
// to be paid, so the settled flag is cleared.
func (r *MongoSessionRepo) AddTime(id string, newMaxTime int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"maxTime":              newMaxTime,
			"isInitialPaymentMade": false,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to add time to session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session document without touching stock.
func (r *MongoSessionRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
