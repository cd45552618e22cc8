package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/slots"
)

const (
	msgInvalidSlotID  = "некорректный идентификатор слота"
	msgSlotNotFound   = "временной слот не найден"
	msgSlotHasBooking = "слот с активным бронированием нельзя удалить"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /slots/{slotId} - Invalid slot ID: %s", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID, identity.UserID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrSlotHasActiveBooking):
			h.logger.Warn("DELETE /slots/%d - Slot has active booking", slotID)
			handlers.RespondConflict(w, msgSlotHasBooking)

		default:
			h.logger.Error("DELETE /slots/%d - Failed: user_id=%d, error=%v", slotID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/%d - Slot deleted: user_id=%d", slotID, identity.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
