package notifyhub

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyhub client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifyhub client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что NotifyHub недоступен и уведомление осталось только в БД
	ErrServiceDegraded = errors.New("notifyhub unavailable: graceful degradation applied")
)
