package grant_points

import (
	"errors"
	"net/http"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "сумма начисления должна быть положительной"
	msgAccessDenied       = "начислять баллы может только администратор"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/points/grant
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	if !identity.Role.IsAdmin() {
		h.logger.Warn("POST /admin/points/grant - Access denied for user_id=%d, role=%s",
			identity.UserID, identity.Role)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req GrantPointsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/points/grant - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.UserID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	description := req.Description
	if description == "" {
		description = "Manual grant by administrator"
	}

	tx, err := h.service.Earn(r.Context(), req.UserID, req.Amount, description)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			h.logger.Warn("POST /admin/points/grant - Invalid amount=%d", req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)
			return
		}
		h.logger.Error("POST /admin/points/grant - Failed: admin_id=%d, user_id=%d, error=%v",
			identity.UserID, req.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/points/grant - Granted %d points to user_id=%d by admin_id=%d",
		req.Amount, req.UserID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, GrantPointsResponse{
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Amount:        tx.Amount,
	})
}
