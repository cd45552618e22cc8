package models

import (
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// Request модели

// GetHistoryRequest запрос истории транзакций пользователя
type GetHistoryRequest struct {
	UserID   int64 `json:"userId"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// Normalize заполняет значения по умолчанию и обрезает pageSize до максимума
func (r *GetHistoryRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = domain.DefaultHistoryPageSize
	}
	if r.PageSize > domain.MaxHistoryPageSize {
		r.PageSize = domain.MaxHistoryPageSize
	}
}

// Response модели

// BalanceResponse ответ с балансом пользователя
type BalanceResponse struct {
	UserID  int64 `json:"userId"`
	Balance int64 `json:"balance"`
}

// TransactionResponse ответ с данными транзакции
type TransactionResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryResponse ответ с историей транзакций
type HistoryResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

// Методы конвертации

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.PointsTransaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	return &TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// FromDomainTransactionList конвертирует список domain моделей в DTO
func FromDomainTransactionList(transactions []*domain.PointsTransaction, page, pageSize int) *HistoryResponse {
	resp := &HistoryResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
		Page:         page,
		PageSize:     pageSize,
	}

	for _, t := range transactions {
		if tr := FromDomainTransaction(t); tr != nil {
			resp.Transactions = append(resp.Transactions, *tr)
		}
	}

	return resp
}
