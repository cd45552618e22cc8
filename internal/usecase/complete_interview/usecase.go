package complete_interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	interviewRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/interview"
)

// UseCase use case для завершения интервью интервьюером
type UseCase struct {
	interviewRepo InterviewRepository
	bookingRepo   BookingRepository
	ledger        Ledger
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
	reward        int64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	interviewRepo InterviewRepository,
	bookingRepo BookingRepository,
	ledger Ledger,
	txManager TransactionManager,
	logger Logger,
	reward int64,
) *UseCase {
	return &UseCase{
		interviewRepo: interviewRepo,
		bookingRepo:   bookingRepo,
		ledger:        ledger,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		reward:        reward,
	}
}

// Execute выполняет use case завершения интервью
// Интервью и бронирование переходят в completed, интервьюеру начисляется
// вознаграждение - все в одной транзакции, поэтому повторное завершение
// не приводит к двойному начислению
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteInterview: interview=%d, interviewer=%d", req.InterviewID, req.InterviewerID)

	if req.InterviewID <= 0 || req.InterviewerID <= 0 {
		return nil, fmt.Errorf("%w: interviewId and interviewerId must be positive", ErrInvalidInput)
	}

	var interview *domain.Interview

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Получаем интервью с блокировкой (FOR UPDATE)
		var err error
		interview, err = uc.interviewRepo.GetByID(txCtx, req.InterviewID)
		if err != nil {
			if errors.Is(err, interviewRepo.ErrInterviewNotFound) {
				uc.logger.Warn("CompleteInterview: interview id=%d not found", req.InterviewID)
				return ErrInterviewNotFound
			}
			uc.logger.Error("CompleteInterview: failed to get interview id=%d: %v", req.InterviewID, err)
			return fmt.Errorf("%w: failed to get interview: %v", ErrInternal, err)
		}

		// Чужое интервью неотличимо от несуществующего
		if interview.InterviewerID != req.InterviewerID {
			uc.logger.Warn("CompleteInterview: interviewer=%d is not the owner of interview id=%d",
				req.InterviewerID, interview.ID)
			return ErrInterviewNotFound
		}

		if !interview.IsScheduled() {
			uc.logger.Warn("CompleteInterview: interview id=%d cannot be completed, status=%s",
				interview.ID, interview.Status)
			return ErrCannotComplete
		}

		// Завершить можно только начавшееся интервью
		if uc.timeProvider.Now().Before(interview.ScheduledAt) {
			uc.logger.Warn("CompleteInterview: interview id=%d has not started yet (scheduled at %s)",
				interview.ID, interview.ScheduledAt)
			return ErrNotStartedYet
		}

		if err := uc.interviewRepo.UpdateStatus(txCtx, interview.ID, domain.InterviewStatusCompleted); err != nil {
			uc.logger.Error("CompleteInterview: failed to update interview id=%d status: %v",
				interview.ID, err)
			return fmt.Errorf("%w: failed to update interview status: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, interview.BookingID, domain.BookingStatusCompleted); err != nil {
			uc.logger.Error("CompleteInterview: failed to update booking id=%d status: %v",
				interview.BookingID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		// Начисляем вознаграждение интервьюеру
		if uc.reward > 0 {
			description := fmt.Sprintf("Reward for completed interview %d", interview.ID)
			if _, err := uc.ledger.Earn(txCtx, interview.InterviewerID, uc.reward, description); err != nil {
				uc.logger.Error("CompleteInterview: failed to reward interviewer=%d: %v",
					interview.InterviewerID, err)
				return fmt.Errorf("%w: failed to reward interviewer: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteInterview: interview id=%d completed, interviewer=%d earned %d points",
		interview.ID, interview.InterviewerID, uc.reward)

	return &Response{
		InterviewID:  interview.ID,
		BookingID:    interview.BookingID,
		Status:       string(domain.InterviewStatusCompleted),
		PointsEarned: uc.reward,
	}, nil
}
