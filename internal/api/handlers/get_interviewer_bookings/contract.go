package get_interviewer_bookings

import (
	"context"

	"github.com/prepmate/MIP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetInterviewerBookings(ctx context.Context, req *models.GetInterviewerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
