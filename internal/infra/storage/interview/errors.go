package interview

import "errors"

var (
	// ErrInterviewNotFound возвращается, когда интервью не найдено
	ErrInterviewNotFound = errors.New("interview.repository: interview not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interview.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interview.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interview.repository: failed to scan row")
)
