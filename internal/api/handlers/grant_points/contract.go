package grant_points

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

type LedgerService interface {
	Earn(ctx context.Context, userID int64, amount int64, description string) (*domain.PointsTransaction, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
