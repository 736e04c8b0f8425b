package consumption

import (
	"context"
	"errors"
	"testing"

	productRepo "recreio/database/repository/product"
	sessionRepo "recreio/database/repository/session"
	"recreio/models"
)

type fakeSessionRepo struct {
	sessions   map[string]*models.ActiveSession
	updateErr  error
	lastUpdate []models.ConsumptionItem
}

func (f *fakeSessionRepo) Create(s *models.ActiveSession) error { f.sessions[s.ID] = s; return nil }

func (f *fakeSessionRepo) GetByID(id string) (*models.ActiveSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) GetAll() ([]models.ActiveSession, error) { return nil, nil }

func (f *fakeSessionRepo) UpdateConsumption(id string, consumption []models.ConsumptionItem) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return sessionRepo.ErrNotFound
	}
	s.Consumption = consumption
	f.lastUpdate = consumption
	return nil
}

func (f *fakeSessionRepo) AddTime(id string, newMaxTime int) error { return nil }
func (f *fakeSessionRepo) Delete(id string) error                  { return nil }
func (f *fakeSessionRepo) CancelWithRestock(ctx context.Context, id string) error {
	return nil
}
func (f *fakeSessionRepo) Watch(ctx context.Context) (<-chan sessionRepo.SessionEvent, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) GetByID(id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, productRepo.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error)     { return nil, nil }
func (f *fakeProductRepo) Create(p *models.Product) error        { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Update(p *models.Product) error        { return nil }
func (f *fakeProductRepo) Delete(id string) error                { return nil }

func (f *fakeProductRepo) AdjustStock(id string, delta int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, productRepo.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return nil, productRepo.ErrInsufficientStock
	}
	p.Stock += delta
	copied := *p
	return &copied, nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) NotifyLowStock(product *models.Product) error {
	f.notified = append(f.notified, product.ID)
	return nil
}

func newLedgerFixture() (*DefaultLedger, *fakeSessionRepo, *fakeProductRepo, *fakeNotifier) {
	sessions := &fakeSessionRepo{sessions: map[string]*models.ActiveSession{
		"s1": {ID: "s1", Consumption: []models.ConsumptionItem{}},
	}}
	products := &fakeProductRepo{products: map[string]*models.Product{
		"p1": {ID: "p1", Name: "Pipoca", Price: 8.00, Stock: 3, MinStock: 2},
	}}
	notifier := &fakeNotifier{}
	return &DefaultLedger{Sessions: sessions, Products: products, Notifier: notifier}, sessions, products, notifier
}

func TestIncrementSnapshotsPriceAndDecrementsStock(t *testing.T) {
	ledger, _, products, _ := newLedgerFixture()

	session, err := ledger.Increment("s1", "p1")
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if len(session.Consumption) != 1 {
		t.Fatalf("expected 1 line, got %d", len(session.Consumption))
	}
	line := session.Consumption[0]
	if line.Price != 8.00 || line.Quantity != 1 || line.Name != "Pipoca" {
		t.Errorf("unexpected line snapshot: %+v", line)
	}
	if products.products["p1"].Stock != 2 {
		t.Errorf("stock = %d, want 2", products.products["p1"].Stock)
	}

	// A later price edit must not change the open tab.
	products.products["p1"].Price = 12.00
	session, err = ledger.Increment("s1", "p1")
	if err != nil {
		t.Fatalf("second Increment failed: %v", err)
	}
	if session.Consumption[0].Price != 8.00 {
		t.Errorf("line price = %v, want snapshotted 8.00", session.Consumption[0].Price)
	}
	if session.Consumption[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", session.Consumption[0].Quantity)
	}
}

func TestIncrementFailsOnEmptyShelf(t *testing.T) {
	ledger, sessions, products, _ := newLedgerFixture()
	products.products["p1"].Stock = 0

	_, err := ledger.Increment("s1", "p1")
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if len(sessions.sessions["s1"].Consumption) != 0 {
		t.Error("tab changed despite failed stock decrement")
	}
}

func TestIncrementRollsBackStockOnSessionWriteFailure(t *testing.T) {
	ledger, sessions, products, _ := newLedgerFixture()
	sessions.updateErr = errors.New("write conflict")

	_, err := ledger.Increment("s1", "p1")
	if err == nil {
		t.Fatal("expected error from failed session write")
	}
	if products.products["p1"].Stock != 3 {
		t.Errorf("stock = %d, want 3 after rollback", products.products["p1"].Stock)
	}
}

func TestDecrementIsInverseOfIncrement(t *testing.T) {
	ledger, sessions, products, _ := newLedgerFixture()

	if _, err := ledger.Increment("s1", "p1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	session, err := ledger.Decrement("s1", "p1")
	if err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}
	if len(session.Consumption) != 0 {
		t.Errorf("expected empty tab, got %d lines", len(session.Consumption))
	}
	if products.products["p1"].Stock != 3 {
		t.Errorf("stock = %d, want 3", products.products["p1"].Stock)
	}
	if len(sessions.sessions["s1"].Consumption) != 0 {
		t.Error("persisted tab not empty")
	}
}

func TestDecrementMissingLine(t *testing.T) {
	ledger, _, _, _ := newLedgerFixture()

	if _, err := ledger.Decrement("s1", "p1"); err == nil {
		t.Fatal("expected error decrementing a product not on the tab")
	}
}

func TestRemoveReturnsFullQuantity(t *testing.T) {
	ledger, _, products, _ := newLedgerFixture()

	for i := 0; i < 3; i++ {
		if _, err := ledger.Increment("s1", "p1"); err != nil {
			t.Fatalf("Increment %d failed: %v", i, err)
		}
	}
	if products.products["p1"].Stock != 0 {
		t.Fatalf("stock = %d, want 0", products.products["p1"].Stock)
	}

	session, err := ledger.Remove("s1", "p1")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(session.Consumption) != 0 {
		t.Errorf("expected empty tab after Remove")
	}
	if products.products["p1"].Stock != 3 {
		t.Errorf("stock = %d, want 3 after full restock", products.products["p1"].Stock)
	}
}

func TestIncrementNotifiesOnThresholdCross(t *testing.T) {
	ledger, _, _, notifier := newLedgerFixture()

	// Stock 3, threshold 2: first increment lands on 2 and notifies.
	if _, err := ledger.Increment("s1", "p1"); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != "p1" {
		t.Errorf("notified = %v, want [p1]", notifier.notified)
	}
}

func TestIncrementUnknownSession(t *testing.T) {
	ledger, _, products, _ := newLedgerFixture()

	_, err := ledger.Increment("ghost", "p1")
	if !errors.Is(err, sessionRepo.ErrNotFound) {
		t.Fatalf("expected session ErrNotFound, got %v", err)
	}
	if products.products["p1"].Stock != 3 {
		t.Error("stock touched for unknown session")
	}
}
