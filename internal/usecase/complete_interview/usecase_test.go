package complete_interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	interviewRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/interview"
)

var testNow = time.Date(2026, 3, 12, 11, 30, 0, 0, time.UTC)

type fakeInterviewRepo struct {
	interviews map[int64]*domain.Interview
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id int64) (*domain.Interview, error) {
	i, ok := f.interviews[id]
	if !ok {
		return nil, interviewRepo.ErrInterviewNotFound
	}
	copied := *i
	return &copied, nil
}

func (f *fakeInterviewRepo) UpdateStatus(_ context.Context, id int64, status domain.InterviewStatus) error {
	i, ok := f.interviews[id]
	if !ok {
		return interviewRepo.ErrInterviewNotFound
	}
	i.Status = status
	return nil
}

type fakeBookingRepo struct {
	statuses map[int64]domain.BookingStatus
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.statuses[id] = status
	return nil
}

type earnCall struct {
	userID int64
	amount int64
}

type fakeLedger struct {
	earns []earnCall
}

func (f *fakeLedger) Earn(_ context.Context, userID int64, amount int64, _ string) (*domain.PointsTransaction, error) {
	f.earns = append(f.earns, earnCall{userID: userID, amount: amount})
	return &domain.PointsTransaction{UserID: userID, Amount: amount, Type: domain.TransactionEarned}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc         *UseCase
	interviews *fakeInterviewRepo
	bookings   *fakeBookingRepo
	ledger     *fakeLedger
}

func newFixture(reward int64) *fixture {
	f := &fixture{
		interviews: &fakeInterviewRepo{interviews: make(map[int64]*domain.Interview)},
		bookings:   &fakeBookingRepo{statuses: make(map[int64]domain.BookingStatus)},
		ledger:     &fakeLedger{},
	}
	f.uc = NewUseCase(f.interviews, f.bookings, f.ledger, fakeTxManager{}, nopLogger{}, reward)
	f.uc.timeProvider = fixedTimeProvider{now: testNow}
	return f
}

// seedInterview создает запланированное интервью, начавшееся startedAgo назад
func (f *fixture) seedInterview(startedAgo time.Duration) {
	f.interviews.interviews[1] = &domain.Interview{
		ID:            1,
		BookingID:     5,
		InterviewerID: 10,
		CandidateID:   2,
		SlotID:        3,
		ScheduledAt:   testNow.Add(-startedAgo),
		Status:        domain.InterviewStatusScheduled,
	}
}

func TestExecute(t *testing.T) {
	f := newFixture(domain.DefaultInterviewerReward)
	f.seedInterview(time.Hour)

	resp, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.InterviewID)
	assert.Equal(t, int64(5), resp.BookingID)
	assert.Equal(t, string(domain.InterviewStatusCompleted), resp.Status)
	assert.Equal(t, int64(domain.DefaultInterviewerReward), resp.PointsEarned)

	assert.Equal(t, domain.InterviewStatusCompleted, f.interviews.interviews[1].Status)
	assert.Equal(t, domain.BookingStatusCompleted, f.bookings.statuses[5])

	require.Len(t, f.ledger.earns, 1)
	assert.Equal(t, earnCall{userID: 10, amount: domain.DefaultInterviewerReward}, f.ledger.earns[0])
}

func TestExecute_ExactlyAtStart(t *testing.T) {
	f := newFixture(1)
	f.seedInterview(0)

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	require.NoError(t, err)
}

func TestExecute_NotStartedYet(t *testing.T) {
	f := newFixture(1)
	f.seedInterview(-time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrNotStartedYet)
	assert.Equal(t, domain.InterviewStatusScheduled, f.interviews.interviews[1].Status)
	assert.Empty(t, f.ledger.earns)
}

// Чужое интервью для вызывающего выглядит как несуществующее
func TestExecute_ForeignInterviewNotFound(t *testing.T) {
	f := newFixture(1)
	f.seedInterview(time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 99})

	assert.ErrorIs(t, err, ErrInterviewNotFound)
	assert.Empty(t, f.ledger.earns)
}

// Повторное завершение не проходит и не дает двойного начисления
func TestExecute_DoubleCompletion(t *testing.T) {
	f := newFixture(1)
	f.seedInterview(time.Hour)

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrCannotComplete)
	assert.Len(t, f.ledger.earns, 1)
}

func TestExecute_CancelledInterview(t *testing.T) {
	f := newFixture(1)
	f.seedInterview(time.Hour)
	f.interviews.interviews[1].Status = domain.InterviewStatusCancelled

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestExecute_ZeroRewardSkipsLedger(t *testing.T) {
	f := newFixture(0)
	f.seedInterview(time.Hour)

	resp, err := f.uc.Execute(context.Background(), &Request{InterviewID: 1, InterviewerID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.PointsEarned)
	assert.Empty(t, f.ledger.earns)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(1)

	_, err := f.uc.Execute(context.Background(), &Request{InterviewID: 42, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrInterviewNotFound)
}
