package create_booking

import (
	"errors"
	"net/http"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger"
	createBooking "github.com/prepmate/MIP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSlotNotFound        = "временной слот не найден"
	msgSlotNotAvailable    = "временной слот недоступен для бронирования"
	msgSlotInPast          = "временной слот уже начался"
	msgOwnSlot             = "нельзя забронировать собственный слот"
	msgInsufficientBalance = "недостаточно баллов для бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		CandidateID: identity.UserID,
		SlotID:      req.SlotID,
	})
	if err != nil {
		var insufficientErr *ledger.InsufficientBalanceError

		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%d, user_id=%d", req.SlotID, identity.UserID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrOwnSlot):
			h.logger.Warn("POST /bookings - Own slot: slot_id=%d, user_id=%d", req.SlotID, identity.UserID)
			handlers.RespondConflict(w, msgOwnSlot)

		case errors.As(err, &insufficientErr):
			h.logger.Warn("POST /bookings - Insufficient balance: user_id=%d, required=%d, available=%d",
				identity.UserID, insufficientErr.Required, insufficientErr.Available)
			handlers.RespondErrorWithDetails(w, http.StatusConflict, msgInsufficientBalance, map[string]int64{
				"required":  insufficientErr.Required,
				"available": insufficientErr.Available,
			})

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, slot_id=%d, error=%v",
				identity.UserID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, slot_id=%d",
		result.ID, identity.UserID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
