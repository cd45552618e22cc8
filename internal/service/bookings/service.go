// Package bookings реализует чтение бронирований с проверкой прав доступа
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	"github.com/prepmate/MIP-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно кандидату бронирования и интервьюеру слота
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования кандидата
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for candidate=%d, status=%v", req.CandidateID, req.Status)

	domainStatus, err := s.toDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status=%s for candidate=%d", *req.Status, req.CandidateID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCandidateID(ctx, req.CandidateID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for candidate=%d: %v", req.CandidateID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for candidate=%d", len(bookings), req.CandidateID)
	return models.FromDomainBookingList(bookings), nil
}

// GetInterviewerBookings получает бронирования на слоты интервьюера
// Опционально фильтрует по статусу
func (s *Service) GetInterviewerBookings(ctx context.Context, req *models.GetInterviewerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetInterviewerBookings: fetching bookings for interviewer=%d, status=%v",
		req.InterviewerID, req.Status)

	domainStatus, err := s.toDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetInterviewerBookings: invalid status=%s for interviewer=%d", *req.Status, req.InterviewerID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByInterviewerID(ctx, req.InterviewerID, domainStatus)
	if err != nil {
		s.logger.Error("GetInterviewerBookings: repository error for interviewer=%d: %v", req.InterviewerID, err)
		return nil, fmt.Errorf("%w: GetInterviewerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetInterviewerBookings: fetched %d bookings for interviewer=%d",
		len(bookings), req.InterviewerID)
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь - кандидат бронирования
// или интервьюер слота. Недоступное бронирование неотличимо от несуществующего
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.CandidateID == userID {
		return nil
	}

	slot, err := s.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: checkUserAccess - get slot: %v", ErrInternal, err)
	}

	if slot.InterviewerID != userID {
		return ErrBookingNotFound
	}

	return nil
}

func (s *Service) toDomainStatus(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}

	domainStatus, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, err
	}
	return &domainStatus, nil
}
