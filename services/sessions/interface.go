package sessions

import (
	"context"
	"time"

	sessionRepo "recreio/database/repository/session"
	"recreio/models"
)

// CheckInInput is what the front desk captures when a group arrives.
type CheckInInput struct {
	Responsible      string   `json:"responsible" binding:"required"`
	ResponsibleCpf   string   `json:"responsibleCpf" binding:"required"`
	ResponsiblePhone string   `json:"responsiblePhone"`
	Children         []string `json:"children" binding:"required"`
	MaxTime          int      `json:"maxTime" binding:"required"`
	IsFullAfternoon  bool     `json:"isFullAfternoon"`
	CouponCode       string   `json:"couponCode"`
}

// SessionService manages active sessions from check-in to cancellation.
// Settlement (closing against payment) lives in the checkout service.
type SessionService interface {
	// CheckIn validates and creates a new active session, snapshotting any
	// coupon discount into the document.
	CheckIn(input CheckInInput) (*models.ActiveSession, error)
	// Get retrieves a session by ID.
	Get(id string) (*models.ActiveSession, error)
	// List retrieves all active sessions ordered by start time.
	List() ([]models.ActiveSession, error)
	// Quote computes the current cost breakdown for display.
	Quote(id string, now time.Time) (*models.Quote, error)
	// AddTime raises the contracted minutes and re-opens the balance.
	AddTime(id string, newMaxTime int) error
	// Cancel removes a mistaken session, returning all consumption to
	// stock.
	Cancel(ctx context.Context, id string) error
	// Delete removes a session without restocking (left without paying).
	Delete(id string) error
	// Watch streams session changes until the context is cancelled.
	Watch(ctx context.Context) (<-chan sessionRepo.SessionEvent, error)
}

// OvertimeScheduler schedules the contracted-time-expiry reminder for a
// session. Reminders are advisory; billing always uses the wall clock.
type OvertimeScheduler interface {
	ScheduleOvertimeReminder(sessionID string, fireAt time.Time) error
}
