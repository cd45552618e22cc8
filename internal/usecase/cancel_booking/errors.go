package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или принадлежит другому кандидату: чужие бронирования не раскрываются
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование в терминальном статусе
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAlreadyStarted возвращается при отмене после начала слота
	ErrAlreadyStarted = errors.New("time slot has already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
