package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
)

var testStart = time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

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

type fakeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

type fakeInterviewRepo struct {
	interviews map[int64]*domain.Interview
	nextID     int64
}

func (f *fakeInterviewRepo) Create(_ context.Context, interview *domain.Interview) (*domain.Interview, error) {
	f.nextID++
	created := *interview
	created.ID = f.nextID
	f.interviews[created.ID] = &created
	return &created, nil
}

type notifyCall struct {
	userID int64
	nType  domain.NotificationType
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) Notify(_ context.Context, userID int64, _ *int64, nType domain.NotificationType, _ string) {
	f.calls = append(f.calls, notifyCall{userID: userID, nType: nType})
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc         *UseCase
	bookings   *fakeBookingRepo
	slots      *fakeSlotRepo
	interviews *fakeInterviewRepo
	notifier   *fakeNotifier
}

func newFixture() *fixture {
	f := &fixture{
		bookings:   &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)},
		slots:      &fakeSlotRepo{slots: make(map[int64]*domain.TimeSlot)},
		interviews: &fakeInterviewRepo{interviews: make(map[int64]*domain.Interview)},
		notifier:   &fakeNotifier{},
	}
	f.uc = NewUseCase(f.bookings, f.slots, f.interviews, f.notifier, fakeTxManager{}, nopLogger{})
	return f
}

func (f *fixture) seedBookedSlot() {
	f.slots.slots[1] = &domain.TimeSlot{
		ID:             1,
		InterviewerID:  10,
		StartTime:      testStart,
		EndTime:        testStart.Add(time.Hour),
		Specialization: "Go Backend",
		Status:         domain.SlotStatusBooked,
	}
	f.bookings.bookings[1] = &domain.Booking{
		ID:          1,
		SlotID:      1,
		CandidateID: 2,
		PointsSpent: 10,
		Status:      domain.BookingStatusCreated,
	}
}

func TestExecute(t *testing.T) {
	f := newFixture()
	f.seedBookedSlot()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, InterviewerID: 10})

	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusConfirmed), resp.Status)
	assert.Equal(t, testStart, resp.ScheduledAt)

	// Интервью - снапшот слота на момент подтверждения
	interview := f.interviews.interviews[resp.InterviewID]
	require.NotNil(t, interview)
	assert.Equal(t, "Go Backend", interview.Specialization)
	assert.Equal(t, testStart, interview.ScheduledAt)
	assert.Equal(t, 60, interview.DurationMinutes)
	assert.Equal(t, domain.InterviewStatusScheduled, interview.Status)
	assert.Equal(t, int64(2), interview.CandidateID)
	assert.Equal(t, int64(10), interview.InterviewerID)

	booking := f.bookings.bookings[1]
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.InterviewID)
	assert.Equal(t, resp.InterviewID, *booking.InterviewID)

	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, notifyCall{userID: 2, nType: domain.NotificationConfirmation}, f.notifier.calls[0])
}

func TestExecute_SnapshotFrozenAfterSlotEdit(t *testing.T) {
	f := newFixture()
	f.seedBookedSlot()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, InterviewerID: 10})
	require.NoError(t, err)

	// Правка слота после подтверждения не трогает назначенное интервью
	f.slots.slots[1].Specialization = "System Design"

	assert.Equal(t, "Go Backend", f.interviews.interviews[resp.InterviewID].Specialization)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Бронирование на чужой слот для вызывающего выглядит как несуществующее
func TestExecute_ForeignBookingNotFound(t *testing.T) {
	f := newFixture()
	f.seedBookedSlot()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, InterviewerID: 99})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, f.interviews.interviews)
}

func TestExecute_AlreadyConfirmed(t *testing.T) {
	f := newFixture()
	f.seedBookedSlot()
	f.bookings.bookings[1].Status = domain.BookingStatusConfirmed

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrCannotConfirm)
	assert.Empty(t, f.interviews.interviews)
}

func TestExecute_CancelledBooking(t *testing.T) {
	f := newFixture()
	f.seedBookedSlot()
	f.bookings.bookings[1].Status = domain.BookingStatusCancelled

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrCannotConfirm)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 0, InterviewerID: 10})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
