package models

import (
	"errors"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе слота
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// CreateSlotRequest запрос на публикацию слота
type CreateSlotRequest struct {
	InterviewerID  int64     `json:"interviewerId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Specialization string    `json:"specialization"`
}

// UpdateSlotRequest запрос на изменение слота
// Указываются только изменяемые поля
type UpdateSlotRequest struct {
	SlotID         int64      `json:"slotId"`
	InterviewerID  int64      `json:"interviewerId"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Specialization *string    `json:"specialization,omitempty"`
}

// ListSlotsRequest запрос списка слотов с фильтрацией
type ListSlotsRequest struct {
	InterviewerID  *int64     `json:"interviewerId,omitempty"`
	Specialization *string    `json:"specialization,omitempty"`
	Status         *string    `json:"status,omitempty"`
	From           *time.Time `json:"from,omitempty"`
	To             *time.Time `json:"to,omitempty"`
	IncludePast    bool       `json:"includePast,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() (domain.SlotFilter, error) {
	filter := domain.SlotFilter{
		InterviewerID:  r.InterviewerID,
		Specialization: r.Specialization,
		From:           r.From,
		To:             r.To,
		IncludePast:    r.IncludePast,
	}

	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              int64     `json:"id"`
	InterviewerID   int64     `json:"interviewerId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Specialization  string    `json:"specialization"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:              s.ID,
		InterviewerID:   s.InterviewerID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes(),
		Specialization:  s.Specialization,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if sr := FromDomainSlot(s); sr != nil {
			resp.Slots = append(resp.Slots, *sr)
		}
	}

	return resp
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus с валидацией
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	s := domain.SlotStatus(status)

	switch s {
	case domain.SlotStatusAvailable, domain.SlotStatusBooked, domain.SlotStatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
