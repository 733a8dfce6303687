package notification

import (
	"context"
	"fmt"

	notificationRepo "salonora/database/repository/notification"
	userRepo "salonora/database/repository/user"
	"salonora/models"
	"salonora/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService records in-app notifications and sends FCM pushes.
type NotificationService interface {
	// Notify stores an in-app notification and attempts a push. Push
	// failures are logged, not propagated; the stored record is the source
	// of truth for the notification panel.
	Notify(ctx context.Context, userID, kind, title, body string) error
	// ListForUser returns the user's notifications, newest first.
	ListForUser(userID string, limit int) ([]models.Notification, error)
	// MarkRead flags one notification as read.
	MarkRead(id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, kind, title, body string) error {
	if userID == "" {
		return nil // guest bookings have no account to notify
	}

	record := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  title,
		Body:   body,
		Kind:   kind,
	}
	if err := s.Repo.Create(record); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.sendPush(ctx, userID, title, body, map[string]string{"kind": kind}); err != nil {
		utils.GetLogger().Warn("push delivery failed",
			zap.String("userID", userID),
			zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) sendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForUser(userID string, limit int) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID, limit)
}

func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}
