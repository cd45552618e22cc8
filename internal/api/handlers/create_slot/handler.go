package create_slot

import (
	"errors"
	"net/http"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/slots"
	"github.com/prepmate/MIP-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "некорректный временной интервал"
	msgSlotOverlap        = "интервал пересекается с другим слотом"
	msgAccessDenied       = "публиковать слоты могут только интервьюеры"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	if !identity.Role.CanPublishSlots() {
		h.logger.Warn("POST /slots - Access denied for user_id=%d, role=%s", identity.UserID, identity.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateSlotRequest{
		InterviewerID:  identity.UserID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotOverlap):
			h.logger.Warn("POST /slots - Overlap for user_id=%d", identity.UserID)
			handlers.RespondConflict(w, msgSlotOverlap)

		case errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("POST /slots - Invalid time range for user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input for user_id=%d: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /slots - Failed: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
