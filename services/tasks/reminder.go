package tasks

import (
	"encoding/json"
	"time"

	"salonora/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues a reminder to fire at a given time.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqScheduler schedules reminders on the Redis-backed task queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

func (s *AsynqScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
