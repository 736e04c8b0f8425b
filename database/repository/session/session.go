package sessionRepo

import (
	"context"

	"recreio/models"
)

// SessionRepository defines methods for active-session data access.
type SessionRepository interface {
	// Create inserts a new active-session document.
	Create(session *models.ActiveSession) error
	// GetByID retrieves a session by its unique ID.
	GetByID(id string) (*models.ActiveSession, error)
	// GetAll retrieves all active sessions ordered by start time.
	GetAll() ([]models.ActiveSession, error)
	// UpdateConsumption replaces the session's consumption list.
	UpdateConsumption(id string, consumption []models.ConsumptionItem) error
	// AddTime raises the contracted minutes and re-opens the balance.
	AddTime(id string, newMaxTime int) error
	// Delete removes a session without touching stock (normal close).
	Delete(id string) error
	// CancelWithRestock deletes the session and returns all consumed
	// quantities to product stock in one transaction.
	CancelWithRestock(ctx context.Context, id string) error
	// Watch streams session changes until the context is cancelled.
	Watch(ctx context.Context) (<-chan SessionEvent, error)
}

// SessionEvent is one change delivered by the push subscription.
type SessionEvent struct {
	// Type is the change kind: "insert", "update", "replace" or "delete".
	Type string
	// SessionID identifies the changed document.
	SessionID string
	// Session carries the post-change document; nil for deletes.
	Session *models.ActiveSession
}
