package list_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/service/slots"
	"github.com/prepmate/MIP-BookingService/internal/service/slots/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/slots?interviewerId=1&specialization=backend&status=available&from=...&to=...&includePast=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidInput) {
			h.logger.Warn("GET /slots - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /slots - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListSlotsRequest, error) {
	query := r.URL.Query()
	req := &models.ListSlotsRequest{}

	if raw := query.Get("interviewerId"); raw != "" {
		interviewerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.InterviewerID = &interviewerID
	}

	if raw := query.Get("specialization"); raw != "" {
		req.Specialization = &raw
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if raw := query.Get("includePast"); raw != "" {
		includePast, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludePast = includePast
	}

	return req, nil
}
