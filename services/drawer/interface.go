package drawer

import (
	"time"

	"recreio/models"
)

// DrawerService manages the daily cash-register lifecycle and its
// end-of-day reconciliation.
type DrawerService interface {
	// Open starts the day's drawer with a counted opening balance.
	Open(openingBalance float64, operator models.Operator) (*models.CashSession, error)
	// Current returns the open drawer, or nil when none is open.
	Current() (*models.CashSession, error)
	// Withdraw takes cash out of the open drawer mid-day.
	Withdraw(amount float64, reason string, operator models.Operator) (*models.CashSession, error)
	// Close reconciles the drawer: expected cash is opening balance plus
	// cash sales minus withdrawals; the difference against the physically
	// counted balance is persisted alongside.
	Close(countedBalance, cashSalesTotal float64, operator models.Operator) (*models.CashSession, error)
	// SalesSince lists sale records finalized since the given instant,
	// for reconciliation against the drawer.
	SalesSince(openedAt time.Time) ([]models.SaleRecord, error)
}
