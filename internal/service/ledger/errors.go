package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientBalance возвращается, когда баланса не хватает на списание
	ErrInsufficientBalance = errors.New("insufficient points balance")

	// ErrInvalidAmount возвращается при неположительной сумме операции
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// InsufficientBalanceError детализированная ошибка нехватки баллов
// Несет требуемую и доступную сумму для тела ответа API
type InsufficientBalanceError struct {
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points balance: required=%d, available=%d", e.Required, e.Available)
}

// Is позволяет errors.Is(err, ErrInsufficientBalance) работать с детализированной ошибкой
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
