package notifier

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	"github.com/prepmate/MIP-BookingService/internal/integrations/notifyhub"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64, onlyUnread bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64, userID int64) error
}

// HubClient интерфейс клиента доставки уведомлений
// Реализация может отсутствовать (nil): уведомления остаются в БД
type HubClient interface {
	PushWithGracefulDegradation(ctx context.Context, req *notifyhub.PushRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
