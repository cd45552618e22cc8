package domain

import "time"

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// TimeSlot represents an interviewer-owned availability window
type TimeSlot struct {
	ID             int64
	InterviewerID  int64
	StartTime      time.Time
	EndTime        time.Time
	Specialization string
	Status         SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can accept a new booking
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsBooked returns true if the slot is held by an active booking
func (s *TimeSlot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// IsCancelled returns true if the slot has been withdrawn by its owner
func (s *TimeSlot) IsCancelled() bool {
	return s.Status == SlotStatusCancelled
}

// DurationMinutes returns the slot length in whole minutes
func (s *TimeSlot) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Overlaps reports whether the slot intersects the half-open interval [start, end)
// Back-to-back slots do not overlap
func (s *TimeSlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// SlotFilter фильтр для выборки слотов
type SlotFilter struct {
	InterviewerID  *int64      // Фильтр по интервьюеру (опционально)
	Specialization *string     // Точное совпадение специализации (опционально)
	Status         *SlotStatus // Фильтр по статусу (опционально)
	From           *time.Time  // Начало периода (опционально)
	To             *time.Time  // Конец периода (опционально)
	IncludePast    bool        // Включать ли прошедшие слоты (по умолчанию - только будущие)
}

// SlotPatch частичное обновление слота
// nil-поля не меняются
type SlotPatch struct {
	StartTime      *time.Time
	EndTime        *time.Time
	Specialization *string
}

// ChangesTime returns true if the patch modifies the slot's time window
func (p *SlotPatch) ChangesTime() bool {
	return p.StartTime != nil || p.EndTime != nil
}
