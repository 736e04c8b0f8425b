package tasks

import (
	"fmt"
	"time"

	"recreio/models"

	"github.com/hibiken/asynq"
)

// QueueScheduler enqueues deferred work onto the asynq task queue. It
// implements both the overtime-reminder scheduler and the low-stock
// notifier.
type QueueScheduler struct {
	Client *asynq.Client
}

// ScheduleOvertimeReminder enqueues a reminder to fire at the session's
// contracted end.
func (s *QueueScheduler) ScheduleOvertimeReminder(sessionID string, fireAt time.Time) error {
	task, opts, err := NewOvertimeReminderTask(sessionID, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build overtime reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue overtime reminder: %w", err)
	}
	return nil
}

// NotifyLowStock enqueues a low-stock notice for the product.
func (s *QueueScheduler) NotifyLowStock(product *models.Product) error {
	task, err := NewLowStockTask(product)
	if err != nil {
		return fmt.Errorf("failed to build low-stock task: %w", err)
	}
	if _, err := s.Client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue low-stock notice: %w", err)
	}
	return nil
}
