package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	interviewRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/interview"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger"
	cancelBooking "github.com/prepmate/MIP-BookingService/internal/usecase/cancel_booking"
	completeInterview "github.com/prepmate/MIP-BookingService/internal/usecase/complete_interview"
	confirmBooking "github.com/prepmate/MIP-BookingService/internal/usecase/confirm_booking"
)

// Дополнительные методы fakeBookingRepo для остальных use cases жизненного цикла

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) SetInterviewID(_ context.Context, id int64, interviewID int64) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.InterviewID = &interviewID
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.BookingStatusCancelled
	b.CancellationReason = reason
	delete(f.activeBySlot, b.SlotID)
	return nil
}

type fakeInterviewStore struct {
	interviews map[int64]*domain.Interview
	nextID     int64
}

func (f *fakeInterviewStore) Create(_ context.Context, interview *domain.Interview) (*domain.Interview, error) {
	f.nextID++
	created := *interview
	created.ID = f.nextID
	f.interviews[created.ID] = &created
	return &created, nil
}

func (f *fakeInterviewStore) GetByID(_ context.Context, id int64) (*domain.Interview, error) {
	i, ok := f.interviews[id]
	if !ok {
		return nil, interviewRepo.ErrInterviewNotFound
	}
	copied := *i
	return &copied, nil
}

func (f *fakeInterviewStore) UpdateStatus(_ context.Context, id int64, status domain.InterviewStatus) error {
	i, ok := f.interviews[id]
	if !ok {
		return interviewRepo.ErrInterviewNotFound
	}
	i.Status = status
	return nil
}

// fakePointsStore журнал в памяти, используется настоящим ledger.Service
type fakePointsStore struct {
	entries []*domain.PointsTransaction
	nextID  int64
}

func (f *fakePointsStore) Append(_ context.Context, tx *domain.PointsTransaction) (*domain.PointsTransaction, error) {
	f.nextID++
	created := *tx
	created.ID = f.nextID
	f.entries = append(f.entries, &created)
	return &created, nil
}

func (f *fakePointsStore) SumByUser(_ context.Context, userID int64) (int64, error) {
	var user []*domain.PointsTransaction
	for _, e := range f.entries {
		if e.UserID == userID {
			user = append(user, e)
		}
	}
	return domain.BalanceOf(user), nil
}

func (f *fakePointsStore) ListByUser(_ context.Context, userID int64, limit, offset uint64) ([]*domain.PointsTransaction, error) {
	var user []*domain.PointsTransaction
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			user = append(user, f.entries[i])
		}
	}
	if offset >= uint64(len(user)) {
		return nil, nil
	}
	user = user[offset:]
	if uint64(len(user)) > limit {
		user = user[:limit]
	}
	return user, nil
}

// fullTxManager реализует все три метода для ledger.Service
type fullTxManager struct {
	fakeTxManager
}

func (fullTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fullTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Полный жизненный цикл: начисление - бронирование - подтверждение - отмена
// с полным возвратом - повторное бронирование - завершение с вознаграждением.
// Журнал баллов настоящий (ledger.Service), балансы проверяются сверткой.
func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()

	const (
		candidateID   = int64(2)
		interviewerID = int64(10)
	)

	slots := &fakeSlotRepo{slots: make(map[int64]*domain.TimeSlot)}
	bookings := newFakeBookingRepo()
	interviews := &fakeInterviewStore{interviews: make(map[int64]*domain.Interview)}
	points := &fakePointsStore{}
	notifier := &fakeNotifier{}

	ledgerSvc := ledger.NewService(points, nil, fullTxManager{}, nopLogger{})

	createUC := NewUseCase(slots, bookings, ledgerSvc, notifier, fakeTxManager{}, nopLogger{}, domain.DefaultBookingCost)

	confirmUC := confirmBooking.NewUseCase(bookings, slots, interviews, notifier, fakeTxManager{}, nopLogger{})

	cancelUC := cancelBooking.NewUseCase(bookings, slots, interviews, ledgerSvc, notifier, fakeTxManager{}, nopLogger{})

	completeUC := completeInterview.NewUseCase(interviews, bookings, ledgerSvc, fakeTxManager{}, nopLogger{}, domain.DefaultInterviewerReward)

	// Use cases работают по реальным часам, поэтому слот привязан к time.Now:
	// до начала 30 часов, отмена попадает в окно полного возврата
	slotStart := time.Now().UTC().Add(30 * time.Hour)
	slots.slots[1] = &domain.TimeSlot{
		ID:             1,
		InterviewerID:  interviewerID,
		StartTime:      slotStart,
		EndTime:        slotStart.Add(time.Hour),
		Specialization: "Go Backend",
		Status:         domain.SlotStatusAvailable,
	}

	balanceOf := func(userID int64) int64 {
		balance, err := points.SumByUser(ctx, userID)
		require.NoError(t, err)
		return balance
	}

	// Начисляем кандидату ровно стоимость бронирования
	_, err := ledgerSvc.Earn(ctx, candidateID, domain.DefaultBookingCost, "welcome grant")
	require.NoError(t, err)
	require.Equal(t, int64(10), balanceOf(candidateID))

	// Бронируем: баллы списаны, слот занят
	created, err := createUC.Execute(ctx, &Request{CandidateID: candidateID, SlotID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), balanceOf(candidateID))
	assert.Equal(t, domain.SlotStatusBooked, slots.slots[1].Status)

	// Повторное бронирование того же слота невозможно
	_, err = createUC.Execute(ctx, &Request{CandidateID: 3, SlotID: 1})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Интервьюер подтверждает: интервью назначено на время слота
	confirmed, err := confirmUC.Execute(ctx, &confirmBooking.Request{
		BookingID:     created.ID,
		InterviewerID: interviewerID,
	})
	require.NoError(t, err)
	assert.Equal(t, slotStart, confirmed.ScheduledAt)

	// Отмена за 30 часов: полный возврат, слот снова доступен, интервью отменено
	cancelled, err := cancelUC.Execute(ctx, &cancelBooking.Request{
		BookingID:   created.ID,
		CandidateID: candidateID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), cancelled.PointsRefunded)
	assert.Equal(t, int64(10), balanceOf(candidateID))
	assert.Equal(t, domain.SlotStatusAvailable, slots.slots[1].Status)
	assert.Equal(t, domain.InterviewStatusCancelled, interviews.interviews[confirmed.InterviewID].Status)

	// Бронируем заново и подтверждаем
	rebooked, err := createUC.Execute(ctx, &Request{CandidateID: candidateID, SlotID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), balanceOf(candidateID))

	reconfirmed, err := confirmUC.Execute(ctx, &confirmBooking.Request{
		BookingID:     rebooked.ID,
		InterviewerID: interviewerID,
	})
	require.NoError(t, err)

	// Сдвигаем назначенное время в прошлое: интервью уже началось
	interviews.interviews[reconfirmed.InterviewID].ScheduledAt = time.Now().UTC().Add(-time.Hour)

	completed, err := completeUC.Execute(ctx, &completeInterview.Request{
		InterviewID:   reconfirmed.InterviewID,
		InterviewerID: interviewerID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultInterviewerReward), completed.PointsEarned)
	assert.Equal(t, int64(1), balanceOf(interviewerID))
	assert.Equal(t, domain.BookingStatusCompleted, bookings.bookings[rebooked.ID].Status)

	// Свертка журнала кандидата: +10 -10 +10 -10 = 0
	history, err := points.ListByUser(ctx, candidateID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, history, 4)
	assert.Equal(t, int64(0), balanceOf(candidateID))
}
