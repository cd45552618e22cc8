package update_slot

import "time"

// UpdateSlotRequest HTTP request model
type UpdateSlotRequest struct {
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Specialization *string    `json:"specialization,omitempty"`
}
