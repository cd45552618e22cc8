package domain

import "time"

// InterviewStatus represents the status of a materialized interview
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// Interview is created when an interviewer confirms a booking.
//
// Specialization, scheduled time and duration are frozen snapshots of the
// slot taken at confirmation time; later slot edits do not re-sync them.
type Interview struct {
	ID            int64
	BookingID     int64
	InterviewerID int64
	CandidateID   int64
	SlotID        int64

	Specialization  string
	ScheduledAt     time.Time
	DurationMinutes int

	Status InterviewStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the interview has not yet been completed or cancelled
func (i *Interview) IsScheduled() bool {
	return i.Status == InterviewStatusScheduled
}

// IsTerminal returns true if the interview reached a final state
func (i *Interview) IsTerminal() bool {
	return i.Status == InterviewStatusCompleted || i.Status == InterviewStatusCancelled
}
