package get_notifications

import (
	"net/http"
	"strconv"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

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

// Handle GET /api/v1/notifications?onlyUnread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	onlyUnread := false
	if raw := r.URL.Query().Get("onlyUnread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		onlyUnread = parsed
	}

	result, err := h.service.List(r.Context(), identity.UserID, onlyUnread)
	if err != nil {
		h.logger.Error("GET /notifications - Failed: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
