package saleRepo

import (
	"time"

	"recreio/models"
)

// SaleRepository defines read access to the append-only sale records.
// Records are only ever inserted by the settlement transaction (checkout
// repo); nothing mutates them afterwards.
type SaleRepository interface {
	// GetByID retrieves a sale record by its unique ID.
	GetByID(id string) (*models.SaleRecord, error)
	// ListSince retrieves sales finalized at or after the given instant,
	// newest first. Used for cash-drawer reconciliation.
	ListSince(since time.Time) ([]models.SaleRecord, error)
	// ListRange retrieves sales finalized within [from, to), newest first.
	ListRange(from, to time.Time) ([]models.SaleRecord, error)
}
