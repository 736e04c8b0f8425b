package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	sessionRepo "recreio/database/repository/session"
	"recreio/models"
	"recreio/services/coupons"
)

type fakeSessionRepo struct {
	sessions map[string]*models.ActiveSession
}

func (f *fakeSessionRepo) Create(s *models.ActiveSession) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(id string) (*models.ActiveSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) GetAll() ([]models.ActiveSession, error) { return nil, nil }
func (f *fakeSessionRepo) UpdateConsumption(id string, c []models.ConsumptionItem) error {
	return nil
}

func (f *fakeSessionRepo) AddTime(id string, newMaxTime int) error {
	s, ok := f.sessions[id]
	if !ok {
		return sessionRepo.ErrNotFound
	}
	s.MaxTime = newMaxTime
	s.IsInitialPaymentMade = false
	return nil
}

func (f *fakeSessionRepo) Delete(id string) error { delete(f.sessions, id); return nil }
func (f *fakeSessionRepo) CancelWithRestock(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}
func (f *fakeSessionRepo) Watch(ctx context.Context) (<-chan sessionRepo.SessionEvent, error) {
	return nil, nil
}

type fakeCouponService struct {
	byCode map[string]*models.Coupon
}

func (f *fakeCouponService) Lookup(code string) (*models.Coupon, error) {
	c, ok := f.byCode[code]
	if !ok {
		return nil, coupons.ErrCouponInvalid
	}
	return c, nil
}

func (f *fakeCouponService) GetAll() ([]models.Coupon, error) { return nil, nil }
func (f *fakeCouponService) Create(c *models.Coupon) error    { return nil }
func (f *fakeCouponService) Update(c *models.Coupon) error    { return nil }
func (f *fakeCouponService) Delete(id string) error           { return nil }

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) Get() (*models.Settings, error) {
	return &models.Settings{FirstHourRate: 30, AdditionalHourRate: 15, FullAfternoonRate: 50}, nil
}
func (f *fakeSettingsRepo) Update(settings *models.Settings) error { return nil }
func (f *fakeSettingsRepo) SetLogoURL(url string) error            { return nil }

type fakeScheduler struct {
	scheduled []string
	fireAt    time.Time
	err       error
}

func (f *fakeScheduler) ScheduleOvertimeReminder(sessionID string, fireAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, sessionID)
	f.fireAt = fireAt
	return nil
}

func newServiceFixture() (*DefaultSessionService, *fakeSessionRepo, *fakeScheduler) {
	repo := &fakeSessionRepo{sessions: map[string]*models.ActiveSession{}}
	scheduler := &fakeScheduler{}
	svc := &DefaultSessionService{
		Repo:     repo,
		Coupons:  &fakeCouponService{byCode: map[string]*models.Coupon{}},
		Settings: &fakeSettingsRepo{},
		Reminder: scheduler,
	}
	return svc, repo, scheduler
}

func validInput() CheckInInput {
	return CheckInInput{
		Responsible:    "Ana",
		ResponsibleCpf: "123.456.789-00",
		Children:       []string{"Bia", "Caio"},
		MaxTime:        60,
	}
}

func TestCheckInCreatesSession(t *testing.T) {
	svc, repo, scheduler := newServiceFixture()

	session, err := svc.CheckIn(validInput())
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if session.ID == "" {
		t.Error("session missing ID")
	}
	if session.Consumption == nil || len(session.Consumption) != 0 {
		t.Error("session must start with an empty tab")
	}
	if _, ok := repo.sessions[session.ID]; !ok {
		t.Error("session not persisted")
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(scheduler.scheduled))
	}
	wantFire := session.StartTime.Add(60 * time.Minute)
	if !scheduler.fireAt.Equal(wantFire) {
		t.Errorf("reminder fireAt = %v, want %v", scheduler.fireAt, wantFire)
	}
}

func TestCheckInValidation(t *testing.T) {
	svc, _, _ := newServiceFixture()

	cases := []struct {
		name   string
		mutate func(*CheckInInput)
	}{
		{"empty responsible", func(in *CheckInInput) { in.Responsible = "  " }},
		{"no children", func(in *CheckInInput) { in.Children = nil }},
		{"blank child name", func(in *CheckInInput) { in.Children = []string{"Bia", " "} }},
		{"zero contracted time", func(in *CheckInInput) { in.MaxTime = 0 }},
		{"negative contracted time", func(in *CheckInInput) { in.MaxTime = -30 }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if _, err := svc.CheckIn(in); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCheckInSnapshotsCouponDiscount(t *testing.T) {
	svc, _, _ := newServiceFixture()
	svc.Coupons = &fakeCouponService{byCode: map[string]*models.Coupon{
		"BEMVINDO10": {ID: "c1", Code: "BEMVINDO10", DiscountType: models.DiscountPercentage, DiscountValue: 10, Status: models.CouponActive},
	}}

	in := validInput()
	in.CouponCode = "BEMVINDO10"
	session, err := svc.CheckIn(in)
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if session.CouponCode != "BEMVINDO10" || session.CouponID != "c1" {
		t.Errorf("coupon snapshot = %q/%q", session.CouponCode, session.CouponID)
	}
	// 10% of the first hour for two children: 60 × 0.10.
	if session.DiscountApplied != 6.00 {
		t.Errorf("DiscountApplied = %v, want 6.00", session.DiscountApplied)
	}
}

func TestCheckInRejectsInvalidCoupon(t *testing.T) {
	svc, _, _ := newServiceFixture()

	in := validInput()
	in.CouponCode = "NAOEXISTE"
	if _, err := svc.CheckIn(in); !errors.Is(err, coupons.ErrCouponInvalid) {
		t.Fatalf("CheckIn = %v, want ErrCouponInvalid", err)
	}
}

func TestCheckInRejectsFreeTimeBeyondOneHour(t *testing.T) {
	svc, _, _ := newServiceFixture()
	svc.Coupons = &fakeCouponService{byCode: map[string]*models.Coupon{
		"MEIAHORA": {ID: "c2", Code: "MEIAHORA", DiscountType: models.DiscountFreeTime, DiscountValue: 30, Status: models.CouponActive},
	}}

	in := validInput()
	in.MaxTime = 120
	in.CouponCode = "MEIAHORA"
	if _, err := svc.CheckIn(in); err == nil {
		t.Fatal("expected rejection of free-time coupon on a two-hour contract")
	}
}

func TestCheckInSurvivesSchedulerFailure(t *testing.T) {
	svc, _, scheduler := newServiceFixture()
	scheduler.err = errors.New("queue down")

	if _, err := svc.CheckIn(validInput()); err != nil {
		t.Fatalf("CheckIn must not fail on reminder errors, got: %v", err)
	}
}

func TestAddTimeRequiresIncrease(t *testing.T) {
	svc, repo, scheduler := newServiceFixture()
	session, err := svc.CheckIn(validInput())
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	scheduler.scheduled = nil

	for _, bad := range []int{60, 30} {
		if err := svc.AddTime(session.ID, bad); err == nil {
			t.Errorf("AddTime(%d) expected error", bad)
		}
	}

	if err := svc.AddTime(session.ID, 120); err != nil {
		t.Fatalf("AddTime failed: %v", err)
	}
	stored := repo.sessions[session.ID]
	if stored.MaxTime != 120 {
		t.Errorf("MaxTime = %d, want 120", stored.MaxTime)
	}
	if stored.IsInitialPaymentMade {
		t.Error("adding time must re-open the balance")
	}
	if len(scheduler.scheduled) != 1 {
		t.Errorf("expected reminder rescheduled once, got %d", len(scheduler.scheduled))
	}
	wantFire := stored.StartTime.Add(120 * time.Minute)
	if !scheduler.fireAt.Equal(wantFire) {
		t.Errorf("reminder fireAt = %v, want %v", scheduler.fireAt, wantFire)
	}
}

func TestQuoteUsesSnapshotDiscount(t *testing.T) {
	svc, repo, _ := newServiceFixture()
	session, err := svc.CheckIn(validInput())
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	repo.sessions[session.ID].DiscountApplied = 6.00

	quote, err := svc.Quote(session.ID, session.StartTime.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	// Two children, one contracted hour: 60 - 6 discount.
	if quote.Total != 54.00 {
		t.Errorf("Total = %v, want 54.00", quote.Total)
	}
}
