// Package checkout implements the settlement protocol: a payment event
// either zeroes the balance while the session continues, or closes the
// session with an immutable sale record.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	checkoutRepo "recreio/database/repository/checkout"
	sessionRepo "recreio/database/repository/session"
	settingsRepo "recreio/database/repository/settings"
	"recreio/models"
	"recreio/services/billing"
	"recreio/services/coupons"
	"recreio/services/drawer"

	"github.com/google/uuid"
)

// amountEpsilon absorbs float rounding when comparing tendered totals
// against the amount due.
const amountEpsilon = 0.001

// ErrAmountMismatch is returned when the tendered payments fall short of
// the amount due.
var ErrAmountMismatch = errors.New("tendered payments below amount due")

// ErrTransactionAborted wraps any settlement commit failure. The
// transaction has no partial effect and is safe to retry.
var ErrTransactionAborted = errors.New("settlement transaction aborted")

// ErrDrawerNotOpen re-exports the drawer guard: no payment may be recorded
// without an open drawer.
var ErrDrawerNotOpen = drawer.ErrNotOpen

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Sessions sessionRepo.SessionRepository
	Coupons  coupons.CouponService
	Settings settingsRepo.SettingsRepository
	Drawer   drawer.DrawerService
	Repo     checkoutRepo.CheckoutRepository
}

// Quote computes the amount due right now. Read-only; safe to call on every
// display tick.
func (s *DefaultCheckoutService) Quote(sessionID, couponCode string, now time.Time) (*models.Quote, error) {
	session, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	quote, _, err := s.quoteSession(session, couponCode, now)
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Settle runs one payment event against the session.
func (s *DefaultCheckoutService) Settle(ctx context.Context, input SettleInput) (*SettleResult, error) {
	// A payment can only be recorded into an open drawer.
	open, err := s.Drawer.Current()
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrDrawerNotOpen
	}

	session, err := s.Sessions.GetByID(input.SessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quote, coupon, err := s.quoteSession(session, input.CouponCode, now)
	if err != nil {
		return nil, err
	}

	tendered := paymentsTotal(input.Payments)
	if tendered < quote.AmountDue-amountEpsilon {
		return nil, ErrAmountMismatch
	}

	// Change is a cash-only concern: non-cash tenders never produce change,
	// so only the cash left after covering the non-cash remainder counts.
	cashTendered := tenderByMethod(input.Payments, models.PaymentCash)
	nonCashTendered := tendered - cashTendered
	changeGiven := math.Max(0, cashTendered-(quote.AmountDue-nonCashTendered))

	closeSession := input.Checkout || session.InOvertime(now)
	minutesCharged := int(math.Round(quote.MinutesToCharge))

	commit := checkoutRepo.SettlementCommit{
		SessionID: session.ID,
		Close:     closeSession,
	}

	// Closing a fully settled session invoices nothing and writes no
	// receipt; every other settlement appends one.
	if quote.AmountDue > 0 || !closeSession {
		commit.Sale = buildSaleRecord(session, quote, coupon, input.Payments, changeGiven, minutesCharged, now)
	}

	if coupon != nil && !session.IsCouponUsageCounted {
		commit.CouponID = coupon.ID
	}

	if !closeSession {
		commit.Continue = &checkoutRepo.Continuation{
			MaxTime:           maxInt(session.MaxTime, minutesCharged),
			AmountPaid:        quote.AmountDue,
			MarkCouponCounted: commit.CouponID != "",
		}
	}

	if err := s.Repo.CommitSettlement(ctx, commit); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionAborted, err)
	}

	return &SettleResult{
		Closed:      closeSession,
		ChangeGiven: changeGiven,
		Quote:       *quote,
		Sale:        commit.Sale,
	}, nil
}

// quoteSession resolves the effective coupon and computes the quote. A
// last-minute code takes precedence over the one chosen at check-in; when
// the stored coupon is no longer resolvable the snapshotted discount still
// applies.
func (s *DefaultCheckoutService) quoteSession(session *models.ActiveSession, couponCode string, now time.Time) (*models.Quote, *models.Coupon, error) {
	var coupon *models.Coupon
	if couponCode != "" {
		c, err := s.Coupons.Lookup(couponCode)
		if err != nil {
			return nil, nil, err
		}
		coupon = c
	} else if session.CouponCode != "" {
		c, err := s.Coupons.Lookup(session.CouponCode)
		if err != nil && !errors.Is(err, coupons.ErrCouponInvalid) {
			return nil, nil, err
		}
		coupon = c
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rates: %w", err)
	}

	in := billing.Input{
		StartTime:         session.StartTime,
		ContractedMinutes: session.MaxTime,
		ChildCount:        len(session.Children),
		IsFullAfternoon:   session.IsFullAfternoon,
		Consumption:       session.Consumption,
		AlreadyPaid:       session.TotalPaidSoFar,
		Now:               now,
	}
	if coupon != nil && couponCode != "" {
		// Only a freshly applied coupon recomputes the discount; the
		// check-in coupon sticks to its snapshot.
		in.Coupon = coupon
	} else {
		in.FallbackDiscount = session.DiscountApplied
	}

	quote, err := billing.Calculate(in, billing.RatesFrom(settings))
	if err != nil {
		return nil, nil, err
	}
	return &quote, coupon, nil
}

func buildSaleRecord(
	session *models.ActiveSession,
	quote *models.Quote,
	coupon *models.Coupon,
	payments []models.Payment,
	changeGiven float64,
	minutesCharged int,
	now time.Time,
) *models.SaleRecord {
	sale := &models.SaleRecord{
		ID:                uuid.New().String(),
		FinalizedAt:       now,
		Responsible:       session.Responsible,
		ResponsibleCpf:    session.ResponsibleCpf,
		Children:          session.Children,
		DurationInMinutes: minutesCharged,
		TimeCost:          quote.TimeCost,
		Consumption:       session.Consumption,
		ConsumptionCost:   quote.ConsumptionCost,
		DiscountApplied:   quote.Discount,
		TotalAmount:       quote.AmountDue,
		PaymentMethods:    payments,
		ChangeGiven:       changeGiven,
	}
	if coupon != nil {
		sale.CouponCode = coupon.Code
		sale.CouponID = coupon.ID
	}
	return sale
}

func paymentsTotal(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

func tenderByMethod(payments []models.Payment, method string) float64 {
	var total float64
	for _, p := range payments {
		if p.Method == method {
			total += p.Amount
		}
	}
	return total
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
