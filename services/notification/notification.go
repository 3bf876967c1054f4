package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	notificationRepo "seminarhall/database/repository/notification"
	"seminarhall/models"
	"seminarhall/utils"
)

// NotificationService records and delivers portal notifications. Delivery is
// in-portal only; the stored records back the bell icon and reminder views.
type NotificationService interface {
	Notify(ctx context.Context, seminarID, email, title, body string) error
	ListForEmail(email string) ([]models.Notification, error)
}

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (svc *DefaultNotificationService) Notify(ctx context.Context, seminarID, email, title, body string) error {
	if email == "" {
		return fmt.Errorf("notification needs a recipient email")
	}
	n := &models.Notification{
		ID:        uuid.New().String(),
		SeminarID: seminarID,
		Email:     email,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := svc.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	utils.GetLogger().Info("notification stored",
		zap.String("email", email), zap.String("seminarId", seminarID), zap.String("title", title))
	return nil
}

func (svc *DefaultNotificationService) ListForEmail(email string) ([]models.Notification, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return svc.Repo.ListByEmail(email)
}
