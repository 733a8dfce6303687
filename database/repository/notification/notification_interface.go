package notificationRepo

import "salonora/models"

// NotificationRepository defines data access for in-app notifications.
type NotificationRepository interface {
	// Create inserts a notification record.
	Create(n *models.Notification) error
	// GetByUser lists a user's notifications, newest first, up to limit.
	GetByUser(userID string, limit int) ([]models.Notification, error)
	// MarkRead flags a notification as read.
	MarkRead(id string) error
}
