package slots

import (
	"context"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	FindOverlapping(ctx context.Context, interviewerID int64, start, end time.Time, excludeID *int64) ([]*domain.TimeSlot, error)
	List(ctx context.Context, filter domain.SlotFilter, now time.Time) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для проверки активного бронирования при изменении и удалении слота
type BookingRepository interface {
	GetActiveBySlotID(ctx context.Context, slotID int64) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени
// Выделен в интерфейс для детерминированных тестов
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
