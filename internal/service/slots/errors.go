package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	// или принадлежит другому интервьюеру
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrSlotOverlap возвращается, когда интервал пересекается с другим слотом интервьюера
	ErrSlotOverlap = errors.New("time slot overlaps with an existing slot")

	// ErrSlotHasActiveBooking возвращается при попытке изменить или удалить слот с активным бронированием
	ErrSlotHasActiveBooking = errors.New("time slot has an active booking")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
