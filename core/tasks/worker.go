package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"utsav-api/core/config"
	"utsav-api/core/logger"

	"github.com/hibiken/asynq"
)

// NotificationWriter persists a delivered notification. Implemented by the
// notification service; declared here to keep the worker free of module imports.
type NotificationWriter interface {
	Write(ctx context.Context, p NotificationPayload) error
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(cfg config.RedisConfig, writer NotificationWriter) *Worker {
	server := asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"notifications": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotificationDeliver, func(ctx context.Context, t *asynq.Task) error {
		var p NotificationPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal notification payload: %w: %w", err, asynq.SkipRetry)
		}
		if err := writer.Write(ctx, p); err != nil {
			logger.Error("Worker:NotificationDeliver:Error", "error", err, "user_id", p.UserID)
			return err
		}
		return nil
	})

	return &Worker{server: server, mux: mux}
}

// Start runs the worker loop in a goroutine; asynq handles graceful retries.
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
