// File: utils/queue.go
package utils

import (
	"log"

	"recreio/config"

	"github.com/hibiken/asynq"
)

// TaskClient is the shared asynq client used to enqueue background tasks
// (overtime reminders, low-stock notices).
var TaskClient *asynq.Client

// TaskQueueRedisOpt builds the Redis connection options for the task queue.
func TaskQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// InitTaskQueue initializes the shared asynq client.
func InitTaskQueue() {
	TaskClient = asynq.NewClient(TaskQueueRedisOpt())
	if TaskClient == nil {
		log.Fatal("Failed to initialize task queue client")
	}
}

// GetTaskClient returns the shared asynq client.
func GetTaskClient() *asynq.Client {
	if TaskClient == nil {
		InitTaskQueue()
	}
	return TaskClient
}
