package checkout

import (
	"context"
	"time"

	"recreio/models"
)

// SettleInput describes one payment event against a session.
type SettleInput struct {
	SessionID string           `json:"sessionId"`
	Payments  []models.Payment `json:"payments" binding:"required"`
	// Checkout forces the session closed even without overtime (the group
	// is leaving).
	Checkout bool `json:"checkout"`
	// CouponCode optionally applies a last-minute coupon, replacing the one
	// chosen at check-in.
	CouponCode string `json:"couponCode"`
}

// SettleResult reports what the settlement did.
type SettleResult struct {
	Closed      bool               `json:"closed"`
	ChangeGiven float64            `json:"changeGiven"`
	Quote       models.Quote       `json:"quote"`
	Sale        *models.SaleRecord `json:"sale,omitempty"`
}

// CheckoutService orchestrates settlements: it validates tender, decides
// continuation versus closure and commits the outcome atomically.
type CheckoutService interface {
	// Quote computes the amount due right now, with an optional last-minute
	// coupon applied. Read-only.
	Quote(sessionID, couponCode string, now time.Time) (*models.Quote, error)
	// Settle runs one payment event.
	Settle(ctx context.Context, input SettleInput) (*SettleResult, error)
}
