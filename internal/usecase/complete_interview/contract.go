package complete_interview

import (
	"context"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// InterviewRepository интерфейс репозитория интервью
type InterviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Interview, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InterviewStatus) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Ledger интерфейс журнала баллов
// Earn присоединяется к транзакции вызывающего
type Ledger interface {
	Earn(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error)
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
