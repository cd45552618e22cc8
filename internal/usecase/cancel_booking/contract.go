package cancel_booking

import (
	"context"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason *string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
}

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error
}

// Ledger интерфейс журнала баллов
// Refund присоединяется к транзакции вызывающего
type Ledger interface {
	Refund(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	Notify(ctx context.Context, userID int64, bookingID *int64, nType domain.NotificationType, message string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
