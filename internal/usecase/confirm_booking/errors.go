package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или его слот принадлежит другому интервьюеру
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotConfirm возвращается, когда бронирование не в статусе created
	ErrCannotConfirm = errors.New("booking cannot be confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
