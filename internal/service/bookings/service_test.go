package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	bookingRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/slot"
	"github.com/prepmate/MIP-BookingService/internal/service/bookings/models"
	"github.com/prepmate/MIP-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	byCandidate   map[int64][]*domain.BookingWithSlot
	byInterviewer map[int64][]*domain.BookingWithSlot
	gotStatus     *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCandidateID(_ context.Context, candidateID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	f.gotStatus = status
	return f.byCandidate[candidateID], nil
}

func (f *fakeBookingRepo) GetByInterviewerID(_ context.Context, interviewerID int64, status *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	f.gotStatus = status
	return f.byInterviewer[interviewerID], nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *fakeBookingRepo, *fakeSlotRepo) {
	bookings := &fakeBookingRepo{
		bookings:      make(map[int64]*domain.Booking),
		byCandidate:   make(map[int64][]*domain.BookingWithSlot),
		byInterviewer: make(map[int64][]*domain.BookingWithSlot),
	}
	slots := &fakeSlotRepo{slots: make(map[int64]*domain.TimeSlot)}
	return NewService(bookings, slots, nopLogger{}), bookings, slots
}

func TestService_GetByID_AsCandidate(t *testing.T) {
	svc, bookings, _ := newTestService()
	bookings.bookings[1] = &domain.Booking{ID: 1, SlotID: 3, CandidateID: 2, Status: domain.BookingStatusCreated}

	resp, err := svc.GetByID(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "created", resp.Status)
}

func TestService_GetByID_AsSlotInterviewer(t *testing.T) {
	svc, bookings, slots := newTestService()
	bookings.bookings[1] = &domain.Booking{ID: 1, SlotID: 3, CandidateID: 2}
	slots.slots[3] = &domain.TimeSlot{ID: 3, InterviewerID: 10}

	_, err := svc.GetByID(context.Background(), 1, 10)

	require.NoError(t, err)
}

// Недоступное бронирование для вызывающего выглядит как несуществующее
func TestService_GetByID_ForeignBookingNotFound(t *testing.T) {
	svc, bookings, slots := newTestService()
	bookings.bookings[1] = &domain.Booking{ID: 1, SlotID: 3, CandidateID: 2}
	slots.slots[3] = &domain.TimeSlot{ID: 3, InterviewerID: 10}

	_, err := svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 42, 1)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings(t *testing.T) {
	svc, bookings, _ := newTestService()
	bookings.byCandidate[2] = []*domain.BookingWithSlot{
		{
			Booking:            domain.Booking{ID: 1, SlotID: 3, CandidateID: 2, Status: domain.BookingStatusConfirmed},
			SlotSpecialization: "Go Backend",
			InterviewerID:      10,
		},
	}

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{CandidateID: 2})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Go Backend", resp.Bookings[0].SlotSpecialization)
	assert.Equal(t, int64(10), resp.Bookings[0].InterviewerID)
	assert.Nil(t, bookings.gotStatus)
}

func TestService_GetUserBookings_StatusFilter(t *testing.T) {
	svc, bookings, _ := newTestService()

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CandidateID: 2,
		Status:      ptr.Ptr("cancelled"),
	})

	require.NoError(t, err)
	require.NotNil(t, bookings.gotStatus)
	assert.Equal(t, domain.BookingStatusCancelled, *bookings.gotStatus)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		CandidateID: 2,
		Status:      ptr.Ptr("pending"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetInterviewerBookings(t *testing.T) {
	svc, bookings, _ := newTestService()
	bookings.byInterviewer[10] = []*domain.BookingWithSlot{
		{Booking: domain.Booking{ID: 1, SlotID: 3, CandidateID: 2}},
		{Booking: domain.Booking{ID: 2, SlotID: 4, CandidateID: 5}},
	}

	resp, err := svc.GetInterviewerBookings(context.Background(), &models.GetInterviewerBookingsRequest{
		InterviewerID: 10,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}
