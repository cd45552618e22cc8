package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	confirmBooking "github.com/prepmate/MIP-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotConfirm    = "бронирование нельзя подтвердить в текущем статусе"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{bookingId}/confirm - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		BookingID:     bookingID,
		InterviewerID: identity.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/confirm - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmBooking.ErrCannotConfirm):
			h.logger.Warn("PATCH /bookings/%d/confirm - Cannot confirm", bookingID)
			handlers.RespondConflict(w, msgCannotConfirm)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d/confirm - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /bookings/%d/confirm - Failed: user_id=%d, error=%v",
				bookingID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/confirm - Confirmed: interview_id=%d, user_id=%d",
		bookingID, result.InterviewID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
