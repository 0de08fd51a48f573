package tasks

import (
	"context"
	"encoding/json"

	"utsav-api/core/config"
	"utsav-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeNotificationDeliver = "notification:deliver"

type NotificationPayload struct {
	UserID  uuid.UUID      `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}

// Notifier is what domain services see: fire-and-forget delivery of an
// in-app notification. The asynq-backed Dispatcher is the production
// implementation; tests substitute a recording fake.
type Notifier interface {
	Notify(ctx context.Context, p NotificationPayload) error
}

type Dispatcher struct {
	client *asynq.Client
}

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewDispatcher(cfg config.RedisConfig) *Dispatcher {
	return &Dispatcher{client: asynq.NewClient(RedisOpt(cfg))}
}

func (d *Dispatcher) Notify(ctx context.Context, p NotificationPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeNotificationDeliver, payload)
	info, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Queue("notifications"))
	if err != nil {
		logger.Error("Dispatcher:Notify:Enqueue:Error", "error", err, "user_id", p.UserID)
		return err
	}
	logger.Debug("Dispatcher:Notify:Enqueued", "task_id", info.ID, "user_id", p.UserID, "type", p.Type)
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
