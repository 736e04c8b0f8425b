package checkoutRepo

import (
	"context"

	"recreio/models"
)

// Continuation describes the session mutation for an Open-Settled outcome:
// the bill is paid down to zero but the group stays checked in.
type Continuation struct {
	// MaxTime is the new contracted minutes, at least the minutes just
	// charged so the same period is not billed twice.
	MaxTime int
	// AmountPaid is added to the session's running totalPaidSoFar.
	AmountPaid float64
	// MarkCouponCounted flips isCouponUsageCounted on the session so later
	// partial settlements do not count the coupon again.
	MarkCouponCounted bool
}

// SettlementCommit is everything a settlement writes. The whole struct
// commits as a single multi-document transaction: sale record insert, coupon
// usage increment and session update-or-delete all land together or not at
// all.
type SettlementCommit struct {
	// Sale is the receipt to append; nil when nothing is invoiced (closing
	// a fully settled session).
	Sale *models.SaleRecord
	// CouponID, when non-empty, has its uses counter incremented by one.
	CouponID string
	// SessionID identifies the active session being settled.
	SessionID string
	// Close deletes the session; otherwise Continuation applies.
	Close bool
	// Continue is required when Close is false.
	Continue *Continuation
}

// CheckoutRepository commits settlement outcomes atomically.
type CheckoutRepository interface {
	// CommitSettlement runs the settlement transaction. On any failure the
	// transaction aborts with no partial effect and the error is safe to
	// retry against.
	CommitSettlement(ctx context.Context, commit SettlementCommit) error
}
