package drawer

import (
	"errors"
	"math"
	"testing"
	"time"

	cashRepo "recreio/database/repository/cashsession"
	"recreio/models"
)

type fakeCashRepo struct {
	open    *models.CashSession
	closure *cashRepo.Closure
}

func (f *fakeCashRepo) GetOpen() (*models.CashSession, error) {
	if f.open == nil {
		return nil, nil
	}
	copied := *f.open
	return &copied, nil
}

func (f *fakeCashRepo) GetByID(id string) (*models.CashSession, error) {
	return nil, cashRepo.ErrNotFound
}

func (f *fakeCashRepo) Create(session *models.CashSession) error {
	f.open = session
	return nil
}

func (f *fakeCashRepo) AddWithdrawal(id string, withdrawal models.Withdrawal) error {
	if f.open == nil || f.open.ID != id {
		return cashRepo.ErrAlreadyClosed
	}
	f.open.Withdrawals = append(f.open.Withdrawals, withdrawal)
	return nil
}

func (f *fakeCashRepo) Close(id string, closure cashRepo.Closure) error {
	if f.open == nil || f.open.ID != id {
		return cashRepo.ErrAlreadyClosed
	}
	f.closure = &closure
	f.open = nil
	return nil
}

type fakeSaleRepo struct {
	sales []models.SaleRecord
}

func (f *fakeSaleRepo) GetByID(id string) (*models.SaleRecord, error) { return nil, nil }

func (f *fakeSaleRepo) ListSince(since time.Time) ([]models.SaleRecord, error) {
	return f.sales, nil
}

func (f *fakeSaleRepo) ListRange(from, to time.Time) ([]models.SaleRecord, error) {
	return f.sales, nil
}

var testOperator = models.Operator{UID: "op1", Email: "caixa@recreio.com"}

func TestOpenRejectsSecondDrawer(t *testing.T) {
	repo := &fakeCashRepo{}
	svc := &DefaultDrawerService{Repo: repo, Sales: &fakeSaleRepo{}}

	if _, err := svc.Open(100.00, testOperator); err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if _, err := svc.Open(50.00, testOperator); !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("second Open = %v, want ErrAlreadyOpen", err)
	}
}

func TestOpenRejectsNegativeBalance(t *testing.T) {
	svc := &DefaultDrawerService{Repo: &fakeCashRepo{}, Sales: &fakeSaleRepo{}}

	if _, err := svc.Open(-1, testOperator); err == nil {
		t.Fatal("expected error for negative opening balance")
	}
}

func TestWithdrawRequiresOpenDrawer(t *testing.T) {
	svc := &DefaultDrawerService{Repo: &fakeCashRepo{}, Sales: &fakeSaleRepo{}}

	if _, err := svc.Withdraw(10, "troco", testOperator); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("Withdraw = %v, want ErrNotOpen", err)
	}
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	repo := &fakeCashRepo{}
	svc := &DefaultDrawerService{Repo: repo, Sales: &fakeSaleRepo{}}
	if _, err := svc.Open(100, testOperator); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, amount := range []float64{0, -5} {
		if _, err := svc.Withdraw(amount, "", testOperator); err == nil {
			t.Errorf("Withdraw(%v) expected error", amount)
		}
	}
}

func TestCloseReconciliation(t *testing.T) {
	repo := &fakeCashRepo{}
	svc := &DefaultDrawerService{Repo: repo, Sales: &fakeSaleRepo{}}

	if _, err := svc.Open(100.00, testOperator); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := svc.Withdraw(50.00, "sangria", testOperator); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}

	// Expected cash: 100 opening + 250 cash sales - 50 withdrawn = 300.
	// Counted 295 leaves a shortfall of 5.
	session, err := svc.Close(295.00, 250.00, testOperator)
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if math.Abs(session.ExpectedCashAmount-300.00) > 0.001 {
		t.Errorf("ExpectedCashAmount = %v, want 300.00", session.ExpectedCashAmount)
	}
	if math.Abs(session.Difference-(-5.00)) > 0.001 {
		t.Errorf("Difference = %v, want -5.00", session.Difference)
	}
	if session.Status != models.CashSessionClosed {
		t.Errorf("Status = %q, want closed", session.Status)
	}
	if repo.closure == nil {
		t.Fatal("closure not persisted")
	}
	if repo.closure.ClosedBy != testOperator {
		t.Errorf("ClosedBy = %+v, want %+v", repo.closure.ClosedBy, testOperator)
	}
}

func TestCloseReconciliationSurplus(t *testing.T) {
	repo := &fakeCashRepo{}
	svc := &DefaultDrawerService{Repo: repo, Sales: &fakeSaleRepo{}}

	if _, err := svc.Open(100.00, testOperator); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := svc.Withdraw(50.00, "sangria", testOperator); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}

	// Counted 305 against an expected 300 is a surplus of 5.
	session, err := svc.Close(305.00, 250.00, testOperator)
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if math.Abs(session.ExpectedCashAmount-300.00) > 0.001 {
		t.Errorf("ExpectedCashAmount = %v, want 300.00", session.ExpectedCashAmount)
	}
	if math.Abs(session.Difference-5.00) > 0.001 {
		t.Errorf("Difference = %v, want 5.00", session.Difference)
	}
}

func TestCloseWithoutOpenDrawer(t *testing.T) {
	svc := &DefaultDrawerService{Repo: &fakeCashRepo{}, Sales: &fakeSaleRepo{}}

	if _, err := svc.Close(0, 0, testOperator); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("Close = %v, want ErrNotOpen", err)
	}
}

func TestCashCollectedIgnoresChange(t *testing.T) {
	sale := models.SaleRecord{
		TotalAmount: 42.00,
		PaymentMethods: []models.Payment{
			{Method: models.PaymentCash, Amount: 50.00},
		},
		ChangeGiven: 8.00,
	}
	if got := sale.CashCollected(); math.Abs(got-42.00) > 0.001 {
		t.Errorf("CashCollected = %v, want 42.00", got)
	}

	mixed := models.SaleRecord{
		TotalAmount: 100.00,
		PaymentMethods: []models.Payment{
			{Method: models.PaymentPix, Amount: 60.00},
			{Method: models.PaymentCash, Amount: 40.00},
		},
	}
	if got := mixed.CashCollected(); math.Abs(got-40.00) > 0.001 {
		t.Errorf("CashCollected = %v, want 40.00 (cash portion only)", got)
	}
}
