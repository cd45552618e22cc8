package complete_interview

// Request запрос на завершение интервью
type Request struct {
	InterviewID   int64 `json:"interviewId"`
	InterviewerID int64 `json:"interviewerId"`
}

// Response ответ с результатом завершения
type Response struct {
	InterviewID  int64  `json:"interviewId"`
	BookingID    int64  `json:"bookingId"`
	Status       string `json:"status"`
	PointsEarned int64  `json:"pointsEarned"`
}
