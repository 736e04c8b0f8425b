// Package tasks defines the asynq task types and payload constructors for
// deferred work: overtime reminders and low-stock notices.
package tasks

import (
	"encoding/json"
	"time"

	"recreio/models"

	"github.com/hibiken/asynq"
)

const (
	// TypeOvertimeReminder fires when a session's contracted time runs out.
	TypeOvertimeReminder = "session:overtime"
	// TypeLowStockNotice files a notice for a product that crossed its
	// restocking threshold.
	TypeLowStockNotice = "notice:lowstock"
)

// NewOvertimeReminderTask builds the reminder task scheduled for the
// contracted end of a session.
func NewOvertimeReminderTask(sessionID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(models.OvertimeReminderPayload{SessionID: sessionID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeOvertimeReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewLowStockTask builds the low-stock notice task for a product.
func NewLowStockTask(product *models.Product) (*asynq.Task, error) {
	b, err := json.Marshal(models.LowStockPayload{
		ProductID: product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLowStockNotice, b), nil
}
