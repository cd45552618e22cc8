package get_points_history

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/service/ledger/models"
)

type LedgerService interface {
	History(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
