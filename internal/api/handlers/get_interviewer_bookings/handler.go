package get_interviewer_bookings

import (
	"errors"
	"net/http"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/bookings"
	"github.com/prepmate/MIP-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус бронирования"
	msgAccessDenied  = "доступно только интервьюерам"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/interviewers/me/bookings?status=created
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	if !identity.Role.CanPublishSlots() {
		h.logger.Warn("GET /interviewers/me/bookings - Access denied for user_id=%d, role=%s",
			identity.UserID, identity.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetInterviewerBookings(r.Context(), &models.GetInterviewerBookingsRequest{
		InterviewerID: identity.UserID,
		Status:        status,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /interviewers/me/bookings - Invalid status for user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /interviewers/me/bookings - Failed: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
