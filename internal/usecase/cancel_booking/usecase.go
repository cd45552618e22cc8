package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	"github.com/prepmate/MIP-BookingService/pkg/ptr"
)

// UseCase use case для отмены бронирования кандидатом
type UseCase struct {
	bookingRepo   BookingRepository
	slotRepo      SlotRepository
	interviewRepo InterviewRepository
	ledger        Ledger
	notifier      Notifier
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	interviewRepo InterviewRepository,
	ledger Ledger,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		interviewRepo: interviewRepo,
		ledger:        ledger,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отмены бронирования
// Размер возврата зависит от времени отмены: при отмене не позднее чем за
// 24 часа до начала слота возвращается вся сумма, позже - половина
// (с округлением вниз). Слот снова становится доступным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, candidate=%d", req.BookingID, req.CandidateID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		booking *domain.Booking
		slot    *domain.TimeSlot
		refund  int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой (FOR UPDATE)
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Чужое бронирование неотличимо от несуществующего
		if booking.CandidateID != req.CandidateID {
			uc.logger.Warn("CancelBooking: candidate=%d is not the owner of booking id=%d",
				req.CandidateID, booking.ID)
			return ErrBookingNotFound
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s",
				booking.ID, booking.Status)
			return ErrCannotCancel
		}

		slot, err = uc.slotRepo.GetByID(txCtx, booking.SlotID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to get slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// После начала слота отмена недоступна
		if !slot.StartTime.After(now) {
			uc.logger.Warn("CancelBooking: slot id=%d already started at %s", slot.ID, slot.StartTime)
			return ErrAlreadyStarted
		}

		// Считаем возврат по времени отмены относительно начала слота
		refund = domain.RefundAmount(booking.PointsSpent, slot.StartTime, now)

		if refund > 0 {
			description := fmt.Sprintf("Refund for cancelled booking %d", booking.ID)
			if _, err := uc.ledger.Refund(txCtx, booking.CandidateID, refund, description); err != nil {
				uc.logger.Error("CancelBooking: failed to refund %d points for booking id=%d: %v",
					refund, booking.ID, err)
				return fmt.Errorf("%w: failed to refund points: %v", ErrInternal, err)
			}
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID, req.Reason); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// Слот снова доступен для бронирования
		if err := uc.slotRepo.UpdateStatus(txCtx, slot.ID, domain.SlotStatusAvailable); err != nil {
			uc.logger.Error("CancelBooking: failed to release slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		// Назначенное интервью отменяется вместе с бронированием
		if booking.InterviewID != nil {
			if err := uc.interviewRepo.UpdateStatus(txCtx, *booking.InterviewID, domain.InterviewStatusCancelled); err != nil {
				uc.logger.Error("CancelBooking: failed to cancel interview id=%d: %v",
					*booking.InterviewID, err)
				return fmt.Errorf("%w: failed to cancel interview: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, refunded %d of %d points",
		booking.ID, refund, booking.PointsSpent)

	uc.notifier.Notify(ctx, booking.CandidateID, ptr.Ptr(booking.ID), domain.NotificationCancellation,
		fmt.Sprintf("Бронирование №%d отменено, возвращено %d баллов", booking.ID, refund))
	uc.notifier.Notify(ctx, slot.InterviewerID, ptr.Ptr(booking.ID), domain.NotificationCancellation,
		fmt.Sprintf("Бронирование №%d на ваш слот %s отменено",
			booking.ID, slot.StartTime.Format("02.01.2006 15:04")))

	return &Response{
		BookingID:      booking.ID,
		Status:         string(domain.BookingStatusCancelled),
		PointsRefunded: refund,
	}, nil
}
