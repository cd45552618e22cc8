package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/notifier"
)

const (
	msgInvalidNotificationID = "некорректный идентификатор уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
)

type Handler struct {
	service NotifierService
	logger  Logger
}

func NewHandler(service NotifierService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || notificationID <= 0 {
		h.logger.Warn("PATCH /notifications/{notificationId}/read - Invalid notification ID: %s",
			mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID, identity.UserID); err != nil {
		if errors.Is(err, notifier.ErrNotificationNotFound) {
			h.logger.Warn("PATCH /notifications/%d/read - Not found for user_id=%d",
				notificationID, identity.UserID)
			handlers.RespondNotFound(w, msgNotificationNotFound)
			return
		}
		h.logger.Error("PATCH /notifications/%d/read - Failed: user_id=%d, error=%v",
			notificationID, identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
