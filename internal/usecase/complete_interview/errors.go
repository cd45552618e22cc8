package complete_interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда интервью не найдено
	// или принадлежит другому интервьюеру
	ErrInterviewNotFound = errors.New("interview not found")

	// ErrCannotComplete возвращается, когда интервью в терминальном статусе
	ErrCannotComplete = errors.New("interview cannot be completed")

	// ErrNotStartedYet возвращается при попытке завершить еще не начавшееся интервью
	ErrNotStartedYet = errors.New("interview has not started yet")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
