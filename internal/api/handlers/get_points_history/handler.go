package get_points_history

import (
	"net/http"
	"strconv"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger/models"
)

const msgInvalidPagination = "некорректные параметры пагинации"

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

// Handle GET /api/v1/points/history?page=1&pageSize=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	query := r.URL.Query()
	req := &models.GetHistoryRequest{UserID: identity.UserID}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		req.Page = page
	}

	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			handlers.RespondBadRequest(w, msgInvalidPagination)
			return
		}
		req.PageSize = pageSize
	}

	result, err := h.service.History(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /points/history - Failed: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
