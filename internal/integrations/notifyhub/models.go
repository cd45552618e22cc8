package notifyhub

// PushRequest запрос на доставку уведомления пользователю
type PushRequest struct {
	UserID    int64  `json:"user_id"`
	BookingID *int64 `json:"booking_id,omitempty"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

// ErrorResponse модель ошибки от NotifyHub
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
