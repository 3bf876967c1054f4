package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"seminarhall/config"
	"seminarhall/models"
	"seminarhall/services/notification"
	"seminarhall/services/tasks"
	"seminarhall/utils"
)

// InitReminderWorker runs the reminder queue consumer in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

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
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted retries")
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
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		title := fmt.Sprintf("Upcoming seminar: %s", p.Title)
		body := fmt.Sprintf("%s in %s on %s at %s", p.Title, p.Hall, p.Date, p.StartTime)
		if err := notifSvc.Notify(ctx, p.SeminarID, p.Email, title, body); err != nil {
			logger.Error("failed to deliver reminder",
				zap.String("seminarId", p.SeminarID), zap.Error(err))
			return err
		}

		logger.Info("reminder delivered",
			zap.String("seminarId", p.SeminarID), zap.String("email", p.Email))
		return nil
	}
}
