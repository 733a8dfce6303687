package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"salonora/config"
	salonRepo "salonora/database/repository/salon"
	"salonora/models"
	"salonora/services/billing"
	"salonora/services/notification"
	"salonora/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the asynq worker in the background, delivering
// scheduled booking reminders.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for booking %s at %s %s", p.BookingID, p.Date, p.Time)

		if err := notifSvc.Notify(ctx, p.UserID, "reminder", p.Title, p.Body); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder: %v", err)
			return err
		}
		return nil
	}
}

// StartStatsRefresher keeps per-salon dashboard snapshots warm. It ticks
// every interval but skips a tick while the previous sweep is still
// running, so a slow sweep never stacks up behind itself. Cancel the
// context to stop it.
func StartStatsRefresher(ctx context.Context, salons salonRepo.SalonRepository, billingSvc billing.BillingService, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		inFlight := false
		done := make(chan struct{}, 1)

		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				inFlight = false
			case <-ticker.C:
				if inFlight {
					continue
				}
				inFlight = true
				go func() {
					refreshAllStats(salons, billingSvc)
					done <- struct{}{}
				}()
			}
		}
	}()
}

func refreshAllStats(salons salonRepo.SalonRepository, billingSvc billing.BillingService) {
	all, err := salons.GetAll()
	if err != nil {
		log.Printf("[StatsRefresher] failed to list salons: %v", err)
		return
	}
	for _, s := range all {
		if _, err := billingSvc.RefreshStats(s.ID); err != nil {
			log.Printf("[StatsRefresher] failed to refresh stats for salon %s: %v", s.ID, err)
		}
	}
}
