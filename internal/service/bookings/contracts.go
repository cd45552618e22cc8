package bookings

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCandidateID(ctx context.Context, candidateID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error)
	GetByInterviewerID(ctx context.Context, interviewerID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error)
}

// SlotRepository интерфейс репозитория слотов
// Нужен для проверки, что читающий - интервьюер слота
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
