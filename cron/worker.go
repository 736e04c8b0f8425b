// Package cron runs the background task worker: overtime reminders and
// low-stock notices drained off the asynq queue.
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sessionRepo "recreio/database/repository/session"
	"recreio/models"
	"recreio/services/notices"
	"recreio/services/tasks"
	"recreio/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitTaskWorker starts the asynq worker in the background.
func InitTaskWorker(sessions sessionRepo.SessionRepository, noticeSvc notices.NoticeService) {
	srv := asynq.NewServer(
		utils.TaskQueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOvertimeReminder, handleOvertimeReminder(sessions, noticeSvc))
	mux.HandleFunc(tasks.TypeLowStockNotice, handleLowStock(noticeSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting task worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("task worker failed to start",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if attempt == maxAttempts {
				logger.Fatal("task worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// handleOvertimeReminder fires when a session's contracted time runs out.
// The session is re-read at fire time: it may have checked out or bought
// more time, in which case the reminder is stale and dropped.
func handleOvertimeReminder(sessions sessionRepo.SessionRepository, noticeSvc notices.NoticeService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.OvertimeReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid overtime reminder payload", zap.Error(err))
			return err
		}

		session, err := sessions.GetByID(p.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrNotFound) {
				return nil
			}
			return err
		}
		if !session.InOvertime(time.Now()) {
			return nil
		}

		return noticeSvc.FileOvertime(session)
	}
}

func handleLowStock(noticeSvc notices.NoticeService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.LowStockPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid low-stock payload", zap.Error(err))
			return err
		}
		return noticeSvc.FileLowStock(p)
	}
}
