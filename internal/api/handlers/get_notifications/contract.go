package get_notifications

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/service/notifier/models"
)

type NotifierService interface {
	List(ctx context.Context, userID int64, onlyUnread bool) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
