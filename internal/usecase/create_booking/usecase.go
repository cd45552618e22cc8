package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	"github.com/prepmate/MIP-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	ledger       Ledger
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
	bookingCost  int64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	ledger Ledger,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
	bookingCost int64,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		ledger:       ledger,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		bookingCost:  bookingCost,
	}
}

// Execute выполняет use case создания бронирования
// Списание баллов, создание бронирования и смена статуса слота выполняются
// в одной сериализуемой транзакции: два кандидата не могут занять один слот,
// а баллы не списываются без созданного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: candidate=%d, slot=%d", req.CandidateID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result *domain.Booking
		slot   *domain.TimeSlot
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем слот с блокировкой (FOR UPDATE)
		var err error
		slot, err = uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.2. Проверяем, что слот доступен для бронирования
		if !slot.IsAvailable() {
			uc.logger.Warn("CreateBooking: slot id=%d is not available, status=%s", slot.ID, slot.Status)
			return ErrSlotNotAvailable
		}

		if slot.InterviewerID == req.CandidateID {
			uc.logger.Warn("CreateBooking: candidate=%d tried to book own slot id=%d", req.CandidateID, slot.ID)
			return ErrOwnSlot
		}

		if !slot.StartTime.After(now) {
			uc.logger.Warn("CreateBooking: slot id=%d already started at %s", slot.ID, slot.StartTime)
			return ErrSlotInPast
		}

		// 2.3. Страховка от рассинхронизации статуса: активное бронирование
		// на доступном слоте означает поврежденные данные
		if _, err := uc.bookingRepo.GetActiveBySlotID(txCtx, slot.ID); err == nil {
			uc.logger.Error("CreateBooking: slot id=%d is available but has an active booking", slot.ID)
			return ErrSlotNotAvailable
		} else if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check active booking for slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to check active booking: %v", ErrInternal, err)
		}

		// 2.4. Списываем баллы (Spend присоединяется к текущей транзакции)
		description := fmt.Sprintf("Booking slot %d (%s)", slot.ID, slot.Specialization)
		if _, err := uc.ledger.Spend(txCtx, req.CandidateID, uc.bookingCost, description); err != nil {
			// Ошибку нехватки баланса отдаем как есть - она несет детали для ответа
			return err
		}

		// 2.5. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SlotID:      slot.ID,
			CandidateID: req.CandidateID,
			PointsSpent: uc.bookingCost,
			Status:      domain.BookingStatusCreated,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.6. Помечаем слот занятым
		if err := uc.slotRepo.UpdateStatus(txCtx, slot.ID, domain.SlotStatusBooked); err != nil {
			uc.logger.Error("CreateBooking: failed to mark slot id=%d booked: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to update slot status: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for candidate=%d (spent %d points)",
		result.ID, req.CandidateID, result.PointsSpent)

	// 3. Уведомления после коммита: их сбой не влияет на результат
	uc.notifier.Notify(ctx, req.CandidateID, ptr.Ptr(result.ID), domain.NotificationCreation,
		fmt.Sprintf("Бронирование №%d создано, ожидает подтверждения интервьюера", result.ID))
	uc.notifier.Notify(ctx, slot.InterviewerID, ptr.Ptr(result.ID), domain.NotificationCreation,
		fmt.Sprintf("Новое бронирование №%d на ваш слот %s", result.ID, slot.StartTime.Format("02.01.2006 15:04")))

	return &Response{
		ID:          result.ID,
		SlotID:      result.SlotID,
		CandidateID: result.CandidateID,
		PointsSpent: result.PointsSpent,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
