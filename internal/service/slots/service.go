// Package slots реализует реестр временных слотов интервьюеров
package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	"github.com/prepmate/MIP-BookingService/internal/service/slots/models"
)

// Service сервис реестра слотов
type Service struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create публикует новый слот интервьюера
// Проверка пересечений и вставка выполняются в одной serializable-транзакции,
// поэтому два конкурентных пересекающихся слота не могут пройти оба
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: publishing slot for interviewer=%d, start=%s, end=%s",
		req.InterviewerID, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for interviewer=%d: %v", req.InterviewerID, err)
		return nil, err
	}

	var created *domain.TimeSlot

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		overlapping, err := s.slotRepo.FindOverlapping(ctx, req.InterviewerID, req.StartTime, req.EndTime, nil)
		if err != nil {
			return fmt.Errorf("%w: Create - find overlapping: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			s.logger.Warn("Create: slot for interviewer=%d overlaps with slot id=%d",
				req.InterviewerID, overlapping[0].ID)
			return ErrSlotOverlap
		}

		created, err = s.slotRepo.Create(ctx, &domain.TimeSlot{
			InterviewerID:  req.InterviewerID,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Specialization: req.Specialization,
			Status:         domain.SlotStatusAvailable,
		})
		if err != nil {
			return fmt.Errorf("%w: Create - insert slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: published slot id=%d for interviewer=%d", created.ID, req.InterviewerID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// List возвращает слоты по фильтру
// Без явного периода отдаются только будущие слоты
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	slots, err := s.slotRepo.List(ctx, filter, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// Update изменяет слот интервьюера
// Изменение времени запрещено, пока на слот есть активное бронирование;
// новый интервал проверяется на пересечения с остальными слотами
func (s *Service) Update(ctx context.Context, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: updating slot id=%d by interviewer=%d", req.SlotID, req.InterviewerID)

	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for slot id=%d: %v", req.SlotID, err)
		return nil, err
	}

	var updated *domain.TimeSlot

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Update - get slot: %v", ErrInternal, err)
		}

		// Чужой слот неотличим от несуществующего
		if slot.InterviewerID != req.InterviewerID {
			s.logger.Warn("Update: slot id=%d belongs to interviewer=%d, not %d",
				req.SlotID, slot.InterviewerID, req.InterviewerID)
			return ErrSlotNotFound
		}

		changesTime := req.StartTime != nil || req.EndTime != nil

		if changesTime {
			if err := s.ensureNoActiveBooking(ctx, slot.ID); err != nil {
				return err
			}
		}

		if req.StartTime != nil {
			slot.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			slot.EndTime = *req.EndTime
		}
		if req.Specialization != nil {
			slot.Specialization = *req.Specialization
		}

		if !slot.StartTime.Before(slot.EndTime) {
			return ErrInvalidTimeRange
		}

		if changesTime {
			overlapping, err := s.slotRepo.FindOverlapping(ctx, slot.InterviewerID, slot.StartTime, slot.EndTime, &slot.ID)
			if err != nil {
				return fmt.Errorf("%w: Update - find overlapping: %v", ErrInternal, err)
			}
			if len(overlapping) > 0 {
				s.logger.Warn("Update: new interval of slot id=%d overlaps with slot id=%d",
					slot.ID, overlapping[0].ID)
				return ErrSlotOverlap
			}
		}

		if err := s.slotRepo.Update(ctx, slot); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Update - update slot: %v", ErrInternal, err)
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated slot id=%d", req.SlotID)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет слот интервьюера
// Слот с активным бронированием удалить нельзя
func (s *Service) Delete(ctx context.Context, slotID int64, interviewerID int64) error {
	s.logger.Info("Delete: deleting slot id=%d by interviewer=%d", slotID, interviewerID)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.GetByID(ctx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Delete - get slot: %v", ErrInternal, err)
		}

		// Чужой слот неотличим от несуществующего
		if slot.InterviewerID != interviewerID {
			s.logger.Warn("Delete: slot id=%d belongs to interviewer=%d, not %d",
				slotID, slot.InterviewerID, interviewerID)
			return ErrSlotNotFound
		}

		if err := s.ensureNoActiveBooking(ctx, slotID); err != nil {
			return err
		}

		if err := s.slotRepo.Delete(ctx, slotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Delete - delete slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", slotID)
	return nil
}

// Вспомогательные методы

// ensureNoActiveBooking возвращает ErrSlotHasActiveBooking, если на слот
// есть неотмененное бронирование
func (s *Service) ensureNoActiveBooking(ctx context.Context, slotID int64) error {
	booking, err := s.bookingRepo.GetActiveBySlotID(ctx, slotID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil
		}
		return fmt.Errorf("%w: check active booking: %v", ErrInternal, err)
	}

	s.logger.Warn("ensureNoActiveBooking: slot id=%d has active booking id=%d (status=%s)",
		slotID, booking.ID, booking.Status)
	return ErrSlotHasActiveBooking
}

func (s *Service) validateCreate(req *models.CreateSlotRequest) error {
	if req.InterviewerID <= 0 {
		return fmt.Errorf("%w: interviewerId is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if !req.StartTime.Before(req.EndTime) {
		return ErrInvalidTimeRange
	}
	if req.StartTime.Before(s.timeProvider.Now()) {
		return fmt.Errorf("%w: slot must start in the future", ErrInvalidTimeRange)
	}
	if strings.TrimSpace(req.Specialization) == "" {
		return fmt.Errorf("%w: specialization is required", ErrInvalidInput)
	}
	if len(req.Specialization) > domain.MaxSpecializationLength {
		return fmt.Errorf("%w: specialization is too long", ErrInvalidInput)
	}
	return nil
}

func (s *Service) validateUpdate(req *models.UpdateSlotRequest) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if req.InterviewerID <= 0 {
		return fmt.Errorf("%w: interviewerId is required", ErrInvalidInput)
	}
	if req.StartTime == nil && req.EndTime == nil && req.Specialization == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Specialization != nil {
		if strings.TrimSpace(*req.Specialization) == "" {
			return fmt.Errorf("%w: specialization must not be empty", ErrInvalidInput)
		}
		if len(*req.Specialization) > domain.MaxSpecializationLength {
			return fmt.Errorf("%w: specialization is too long", ErrInvalidInput)
		}
	}
	return nil
}
