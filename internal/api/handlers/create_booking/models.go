package create_booking

import (
	"time"

	createBooking "github.com/prepmate/MIP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID int64 `json:"slotId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	SlotID      int64  `json:"slotId"`
	CandidateID int64  `json:"candidateId"`
	PointsSpent int64  `json:"pointsSpent"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		SlotID:      resp.SlotID,
		CandidateID: resp.CandidateID,
		PointsSpent: resp.PointsSpent,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
