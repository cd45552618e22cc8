package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/slots"
	"github.com/prepmate/MIP-BookingService/internal/service/slots/models"
)

const (
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "некорректный временной интервал"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotOverlap        = "интервал пересекается с другим слотом"
	msgSlotHasBooking     = "слот с активным бронированием нельзя изменить"
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

// Handle PATCH /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PATCH /slots/{slotId} - Invalid slot ID: %s", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/%d - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateSlotRequest{
		SlotID:         slotID,
		InterviewerID:  identity.UserID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrSlotHasActiveBooking):
			h.logger.Warn("PATCH /slots/%d - Slot has active booking", slotID)
			handlers.RespondConflict(w, msgSlotHasBooking)

		case errors.Is(err, slots.ErrSlotOverlap):
			h.logger.Warn("PATCH /slots/%d - Overlap", slotID)
			handlers.RespondConflict(w, msgSlotOverlap)

		case errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /slots/%d - Invalid time range", slotID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/%d - Invalid input: %v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /slots/%d - Failed: user_id=%d, error=%v", slotID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/%d - Slot updated: user_id=%d", slotID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
