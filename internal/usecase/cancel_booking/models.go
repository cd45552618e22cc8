package cancel_booking

// Request запрос на отмену бронирования
type Request struct {
	BookingID   int64   `json:"bookingId"`
	CandidateID int64   `json:"candidateId"`
	Reason      *string `json:"reason,omitempty"`
}

// Response ответ с результатом отмены
type Response struct {
	BookingID      int64  `json:"bookingId"`
	Status         string `json:"status"`
	PointsRefunded int64  `json:"pointsRefunded"`
}
