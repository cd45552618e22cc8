package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	"github.com/prepmate/MIP-BookingService/pkg/ptr"
)

// UseCase use case для подтверждения бронирования интервьюером
type UseCase struct {
	bookingRepo   BookingRepository
	slotRepo      SlotRepository
	interviewRepo InterviewRepository
	notifier      Notifier
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	interviewRepo InterviewRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		interviewRepo: interviewRepo,
		notifier:      notifier,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения бронирования
// Создает интервью со снапшотом данных слота: последующие правки слота
// не меняют уже назначенное интервью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d, interviewer=%d", req.BookingID, req.InterviewerID)

	if req.BookingID <= 0 || req.InterviewerID <= 0 {
		return nil, fmt.Errorf("%w: bookingId and interviewerId must be positive", ErrInvalidInput)
	}

	var (
		booking   *domain.Booking
		interview *domain.Interview
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой (FOR UPDATE)
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		slot, err := uc.slotRepo.GetByID(txCtx, booking.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Error("ConfirmBooking: slot id=%d of booking id=%d not found",
					booking.SlotID, booking.ID)
				return fmt.Errorf("%w: booking slot not found", ErrInternal)
			}
			uc.logger.Error("ConfirmBooking: failed to get slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Бронирование на чужой слот неотличимо от несуществующего
		if slot.InterviewerID != req.InterviewerID {
			uc.logger.Warn("ConfirmBooking: interviewer=%d is not the owner of slot id=%d",
				req.InterviewerID, slot.ID)
			return ErrBookingNotFound
		}

		if !booking.CanBeConfirmed() {
			uc.logger.Warn("ConfirmBooking: booking id=%d cannot be confirmed, status=%s",
				booking.ID, booking.Status)
			return ErrCannotConfirm
		}

		// Создаем интервью со снапшотом данных слота
		interview, err = uc.interviewRepo.Create(txCtx, &domain.Interview{
			BookingID:       booking.ID,
			InterviewerID:   slot.InterviewerID,
			CandidateID:     booking.CandidateID,
			SlotID:          slot.ID,
			Specialization:  slot.Specialization,
			ScheduledAt:     slot.StartTime,
			DurationMinutes: slot.DurationMinutes(),
			Status:          domain.InterviewStatusScheduled,
		})
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to create interview for booking id=%d: %v",
				booking.ID, err)
			return fmt.Errorf("%w: failed to create interview: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.SetInterviewID(txCtx, booking.ID, interview.ID); err != nil {
			uc.logger.Error("ConfirmBooking: failed to link interview id=%d to booking id=%d: %v",
				interview.ID, booking.ID, err)
			return fmt.Errorf("%w: failed to link interview: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.BookingStatusConfirmed); err != nil {
			uc.logger.Error("ConfirmBooking: failed to update booking id=%d status: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed, interview id=%d scheduled at %s",
		booking.ID, interview.ID, interview.ScheduledAt)

	uc.notifier.Notify(ctx, booking.CandidateID, ptr.Ptr(booking.ID), domain.NotificationConfirmation,
		fmt.Sprintf("Бронирование №%d подтверждено, интервью назначено на %s",
			booking.ID, interview.ScheduledAt.Format("02.01.2006 15:04")))

	return &Response{
		BookingID:   booking.ID,
		Status:      string(domain.BookingStatusConfirmed),
		InterviewID: interview.ID,
		ScheduledAt: interview.ScheduledAt,
	}, nil
}
