package models

import (
	"errors"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе бронирования
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос бронирований кандидата
type GetUserBookingsRequest struct {
	CandidateID int64   `json:"candidateId"`
	Status      *string `json:"status,omitempty"`
}

// GetInterviewerBookingsRequest запрос бронирований на слоты интервьюера
type GetInterviewerBookingsRequest struct {
	InterviewerID int64   `json:"interviewerId"`
	Status        *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	SlotID      int64  `json:"slotId"`
	CandidateID int64  `json:"candidateId"`
	PointsSpent int64  `json:"pointsSpent"`
	Status      string `json:"status"`
	InterviewID *int64 `json:"interviewId,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWithSlotResponse бронирование с денормализованными данными слота
type BookingWithSlotResponse struct {
	BookingResponse

	SlotStartTime      time.Time `json:"slotStartTime"`
	SlotEndTime        time.Time `json:"slotEndTime"`
	SlotSpecialization string    `json:"slotSpecialization"`
	InterviewerID      int64     `json:"interviewerId"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingWithSlotResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		SlotID:             b.SlotID,
		CandidateID:        b.CandidateID,
		PointsSpent:        b.PointsSpent,
		Status:             string(b.Status),
		InterviewID:        b.InterviewID,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingWithSlot конвертирует бронирование со слотом в DTO
func FromDomainBookingWithSlot(b *domain.BookingWithSlot) *BookingWithSlotResponse {
	if b == nil {
		return nil
	}

	return &BookingWithSlotResponse{
		BookingResponse:    *FromDomainBooking(&b.Booking),
		SlotStartTime:      b.SlotStartTime,
		SlotEndTime:        b.SlotEndTime,
		SlotSpecialization: b.SlotSpecialization,
		InterviewerID:      b.InterviewerID,
	}
}

// FromDomainBookingList конвертирует список бронирований со слотами в DTO
func FromDomainBookingList(bookings []*domain.BookingWithSlot) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingWithSlotResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBookingWithSlot(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.BookingStatusCreated, domain.BookingStatusConfirmed, domain.BookingStatusCancelled, domain.BookingStatusCompleted:
		return s, nil
	}

	return "", ErrInvalidStatus
}
