// Package drawer implements the cash-register ledger: open, operate, close,
// reconcile.
package drawer

import (
	"errors"
	"time"

	cashRepo "recreio/database/repository/cashsession"
	saleRepo "recreio/database/repository/sale"
	"recreio/models"

	"github.com/google/uuid"
)

// ErrAlreadyOpen is returned when opening a drawer while one is already
// open.
var ErrAlreadyOpen = errors.New("a cash drawer is already open")

// ErrNotOpen is returned by operations that require an open drawer.
var ErrNotOpen = errors.New("no cash drawer is open")

// ErrAlreadyClosed is returned when closing a drawer twice.
var ErrAlreadyClosed = cashRepo.ErrAlreadyClosed

// DefaultDrawerService implements DrawerService.
type DefaultDrawerService struct {
	Repo  cashRepo.CashSessionRepository
	Sales saleRepo.SaleRepository
}

// Open starts the day's drawer.
func (s *DefaultDrawerService) Open(openingBalance float64, operator models.Operator) (*models.CashSession, error) {
	if openingBalance < 0 {
		return nil, errors.New("opening balance cannot be negative")
	}

	existing, err := s.Repo.GetOpen()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyOpen
	}

	session := &models.CashSession{
		ID:             uuid.New().String(),
		Status:         models.CashSessionOpen,
		OpenedAt:       time.Now(),
		OpeningBalance: openingBalance,
		OpenedBy:       operator,
		Withdrawals:    []models.Withdrawal{},
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Current returns the open drawer, or nil when none is open.
func (s *DefaultDrawerService) Current() (*models.CashSession, error) {
	return s.Repo.GetOpen()
}

// Withdraw takes cash out of the open drawer.
func (s *DefaultDrawerService) Withdraw(amount float64, reason string, operator models.Operator) (*models.CashSession, error) {
	if amount <= 0 {
		return nil, errors.New("withdrawal amount must be positive")
	}

	session, err := s.Repo.GetOpen()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotOpen
	}

	withdrawal := models.Withdrawal{
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now(),
		UserName:  operator.Email,
	}
	if err := s.Repo.AddWithdrawal(session.ID, withdrawal); err != nil {
		return nil, err
	}

	session.Withdrawals = append(session.Withdrawals, withdrawal)
	return session, nil
}

// Close reconciles and closes the open drawer.
func (s *DefaultDrawerService) Close(countedBalance, cashSalesTotal float64, operator models.Operator) (*models.CashSession, error) {
	session, err := s.Repo.GetOpen()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotOpen
	}

	expected := session.OpeningBalance + cashSalesTotal - session.WithdrawalsTotal()
	difference := countedBalance - expected

	closure := cashRepo.Closure{
		ClosedAt:           time.Now(),
		ClosedBy:           operator,
		CountedBalance:     countedBalance,
		ExpectedCashAmount: expected,
		Difference:         difference,
		FinalCashSales:     cashSalesTotal,
	}
	if err := s.Repo.Close(session.ID, closure); err != nil {
		return nil, err
	}

	session.Status = models.CashSessionClosed
	session.ClosedAt = &closure.ClosedAt
	session.ClosedBy = &closure.ClosedBy
	session.CountedBalance = closure.CountedBalance
	session.ExpectedCashAmount = closure.ExpectedCashAmount
	session.Difference = closure.Difference
	session.FinalCashSales = closure.FinalCashSales
	return session, nil
}

// SalesSince lists sale records finalized since the given instant.
func (s *DefaultDrawerService) SalesSince(openedAt time.Time) ([]models.SaleRecord, error) {
	return s.Sales.ListSince(openedAt)
}
