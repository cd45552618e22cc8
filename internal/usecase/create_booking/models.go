package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	CandidateID int64 `json:"candidateId"`
	SlotID      int64 `json:"slotId"`
}

// Response ответ с созданным бронированием
type Response struct {
	ID          int64     `json:"id"`
	SlotID      int64     `json:"slotId"`
	CandidateID int64     `json:"candidateId"`
	PointsSpent int64     `json:"pointsSpent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
