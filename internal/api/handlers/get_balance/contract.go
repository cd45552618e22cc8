package get_balance

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/service/ledger/models"
)

type LedgerService interface {
	Balance(ctx context.Context, userID int64) (*models.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
