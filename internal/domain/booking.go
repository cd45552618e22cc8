package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusCreated   BookingStatus = "created"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a candidate's point-backed claim on a time slot
//
// State machine: created -> confirmed -> completed, with created -> cancelled
// and confirmed -> cancelled. cancelled and completed are terminal.
type Booking struct {
	ID          int64
	SlotID      int64
	CandidateID int64

	// PointsSpent фиксируется при создании и используется как база для
	// расчета возврата; не меняется при изменении глобальной стоимости
	PointsSpent int64

	Status      BookingStatus
	InterviewID *int64 // Заполняется только после подтверждения

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot (any non-cancelled state)
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// IsTerminal returns true if no further transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}

// CanBeConfirmed returns true if the booking is awaiting interviewer confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == BookingStatusCreated
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusCreated || b.Status == BookingStatusConfirmed
}

// BookingWithSlot бронирование вместе с данными слота (для списков)
type BookingWithSlot struct {
	Booking

	SlotStartTime      time.Time
	SlotEndTime        time.Time
	SlotSpecialization string
	InterviewerID      int64
}
