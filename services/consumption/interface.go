package consumption

import "recreio/models"

// Ledger maintains the consumption list attached to a session. Every
// quantity change is backed by an atomic stock transaction; the session
// document is only touched after the stock side succeeded.
type Ledger interface {
	// Increment takes one unit of the product off the shelf and adds it to
	// the session's tab. Fails with ErrInsufficientStock when the shelf is
	// empty.
	Increment(sessionID, productID string) (*models.ActiveSession, error)
	// Decrement returns one unit to the shelf and removes it from the tab.
	Decrement(sessionID, productID string) (*models.ActiveSession, error)
	// Remove drops the whole line item, returning its full quantity to the
	// shelf.
	Remove(sessionID, productID string) (*models.ActiveSession, error)
}

// LowStockNotifier receives products that crossed their restocking
// threshold. Delivery is deduplicated downstream, one unresolved notice per
// product.
type LowStockNotifier interface {
	NotifyLowStock(product *models.Product) error
}
