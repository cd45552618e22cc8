package create_slot

import "time"

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Specialization string    `json:"specialization"`
}
