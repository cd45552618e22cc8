package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже забронирован или отменен
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrSlotInPast возвращается при попытке забронировать начавшийся слот
	ErrSlotInPast = errors.New("time slot is in the past")

	// ErrOwnSlot возвращается при попытке забронировать собственный слот
	ErrOwnSlot = errors.New("cannot book your own slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
