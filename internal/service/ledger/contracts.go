package ledger

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// PointsRepository интерфейс append-only репозитория журнала баллов
type PointsRepository interface {
	Append(ctx context.Context, tx *domain.PointsTransaction) (*domain.PointsTransaction, error)
	SumByUser(ctx context.Context, userID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset uint64) ([]*domain.PointsTransaction, error)
}

// BalanceCache кэш проекции баланса
// Реализация может отсутствовать (nil): сервис обязан работать без кэша
type BalanceCache interface {
	Get(ctx context.Context, userID int64) (int64, error)
	Set(ctx context.Context, userID int64, balance int64) error
	Invalidate(ctx context.Context, userID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
