package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sessionRepo "recreio/database/repository/session"
	settingsRepo "recreio/database/repository/settings"
	"recreio/models"
	"recreio/services/billing"
	"recreio/services/coupons"
	"recreio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Repo     sessionRepo.SessionRepository
	Coupons  coupons.CouponService
	Settings settingsRepo.SettingsRepository
	Reminder OvertimeScheduler
}

// CheckIn validates and creates a new active session.
func (s *DefaultSessionService) CheckIn(input CheckInInput) (*models.ActiveSession, error) {
	if strings.TrimSpace(input.Responsible) == "" {
		return nil, errors.New("responsible party name is required")
	}
	if len(input.Children) == 0 {
		return nil, errors.New("at least one child is required")
	}
	for _, child := range input.Children {
		if strings.TrimSpace(child) == "" {
			return nil, errors.New("child names cannot be empty")
		}
	}
	if input.MaxTime <= 0 {
		return nil, errors.New("contracted time must be positive")
	}

	now := time.Now()
	session := &models.ActiveSession{
		ID:               uuid.New().String(),
		Responsible:      input.Responsible,
		ResponsibleCpf:   input.ResponsibleCpf,
		ResponsiblePhone: input.ResponsiblePhone,
		Children:         input.Children,
		StartTime:        now,
		MaxTime:          input.MaxTime,
		IsFullAfternoon:  input.IsFullAfternoon,
		Consumption:      []models.ConsumptionItem{},
	}

	if input.CouponCode != "" {
		coupon, err := s.Coupons.Lookup(input.CouponCode)
		if err != nil {
			return nil, err
		}

		settings, err := s.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to load rates: %w", err)
		}

		// Snapshot the discount at check-in. This also enforces the
		// free-time context rule against the contracted hours.
		quote, err := billing.Calculate(billing.Input{
			StartTime:         now,
			ContractedMinutes: input.MaxTime,
			ChildCount:        len(input.Children),
			IsFullAfternoon:   input.IsFullAfternoon,
			Coupon:            coupon,
			Now:               now,
		}, billing.RatesFrom(settings))
		if err != nil {
			return nil, err
		}

		session.CouponCode = coupon.Code
		session.CouponID = coupon.ID
		session.DiscountApplied = quote.Discount
	}

	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}

	s.scheduleReminder(session)
	return session, nil
}

// Get retrieves a session by ID.
func (s *DefaultSessionService) Get(id string) (*models.ActiveSession, error) {
	return s.Repo.GetByID(id)
}

// List retrieves all active sessions ordered by start time.
func (s *DefaultSessionService) List() ([]models.ActiveSession, error) {
	return s.Repo.GetAll()
}

// Quote computes the current cost breakdown for display. It is a pure
// projection over the session snapshot plus wall-clock time; nothing is
// written.
func (s *DefaultSessionService) Quote(id string, now time.Time) (*models.Quote, error) {
	session, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load rates: %w", err)
	}

	quote, err := billing.Calculate(billing.Input{
		StartTime:         session.StartTime,
		ContractedMinutes: session.MaxTime,
		ChildCount:        len(session.Children),
		IsFullAfternoon:   session.IsFullAfternoon,
		Consumption:       session.Consumption,
		FallbackDiscount:  session.DiscountApplied,
		AlreadyPaid:       session.TotalPaidSoFar,
		Now:               now,
	}, billing.RatesFrom(settings))
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// AddTime raises the contracted minutes and re-opens the balance.
func (s *DefaultSessionService) AddTime(id string, newMaxTime int) error {
	session, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if newMaxTime <= session.MaxTime {
		return errors.New("new contracted time must exceed the current one")
	}
	if err := s.Repo.AddTime(id, newMaxTime); err != nil {
		return err
	}

	session.MaxTime = newMaxTime
	s.scheduleReminder(session)
	return nil
}

// Cancel removes a mistaken session, returning all consumption to stock.
func (s *DefaultSessionService) Cancel(ctx context.Context, id string) error {
	return s.Repo.CancelWithRestock(ctx, id)
}

// Delete removes a session without restocking.
func (s *DefaultSessionService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// Watch streams session changes until the context is cancelled.
func (s *DefaultSessionService) Watch(ctx context.Context) (<-chan sessionRepo.SessionEvent, error) {
	return s.Repo.Watch(ctx)
}

// scheduleReminder enqueues the contracted-time-expiry reminder. Failures
// are logged and swallowed: the reminder is advisory and must never fail a
// check-in.
func (s *DefaultSessionService) scheduleReminder(session *models.ActiveSession) {
	if s.Reminder == nil {
		return
	}
	if err := s.Reminder.ScheduleOvertimeReminder(session.ID, session.ContractedEnd()); err != nil {
		utils.GetLogger().Warn("failed to schedule overtime reminder",
			zap.String("sessionId", session.ID),
			zap.Error(err),
		)
	}
}
