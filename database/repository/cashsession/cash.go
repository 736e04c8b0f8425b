package cashRepo

import (
	"time"

	"recreio/models"
)

// Closure carries the reconciliation values persisted when a drawer closes.
// The arithmetic lives in the drawer service; this is just what gets written.
type Closure struct {
	ClosedAt           time.Time
	ClosedBy           models.Operator
	CountedBalance     float64
	ExpectedCashAmount float64
	Difference         float64
	FinalCashSales     float64
}

// CashSessionRepository defines methods for cash-drawer data access.
type CashSessionRepository interface {
	// GetOpen retrieves the single open drawer, or nil when none is open.
	GetOpen() (*models.CashSession, error)
	// GetByID retrieves a drawer session by its unique ID.
	GetByID(id string) (*models.CashSession, error)
	// Create inserts a new open drawer. The unique partial index on open
	// status makes a second concurrent open fail.
	Create(session *models.CashSession) error
	// AddWithdrawal appends a withdrawal to an open drawer.
	AddWithdrawal(id string, withdrawal models.Withdrawal) error
	// Close persists the reconciliation and flips status to closed. Fails
	// with ErrAlreadyClosed when the drawer is not open anymore.
	Close(id string, closure Closure) error
}
