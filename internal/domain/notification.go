package domain

import "time"

// NotificationType represents the lifecycle event a notification describes
type NotificationType string

const (
	NotificationCreation     NotificationType = "creation"
	NotificationConfirmation NotificationType = "confirmation"
	NotificationCancellation NotificationType = "cancellation"
	NotificationReminder     NotificationType = "reminder"
)

// Notification уведомление пользователя о событии жизненного цикла бронирования
type Notification struct {
	ID        int64
	UserID    int64
	BookingID *int64
	Type      NotificationType
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
