package confirm_booking

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetInterviewID(ctx context.Context, id int64, interviewID int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	Create(ctx context.Context, interview *domain.Interview) (*domain.Interview, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	Notify(ctx context.Context, userID int64, bookingID *int64, nType domain.NotificationType, message string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
