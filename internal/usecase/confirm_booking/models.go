package confirm_booking

import "time"

// Request запрос на подтверждение бронирования
type Request struct {
	BookingID     int64 `json:"bookingId"`
	InterviewerID int64 `json:"interviewerId"`
}

// Response ответ с подтвержденным бронированием
type Response struct {
	BookingID   int64     `json:"bookingId"`
	Status      string    `json:"status"`
	InterviewID int64     `json:"interviewId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}
