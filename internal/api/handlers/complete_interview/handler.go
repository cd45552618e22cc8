package complete_interview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	completeInterview "github.com/prepmate/MIP-BookingService/internal/usecase/complete_interview"
)

const (
	msgInvalidInterviewID = "некорректный идентификатор интервью"
	msgInterviewNotFound  = "интервью не найдено"
	msgCannotComplete     = "интервью нельзя завершить в текущем статусе"
	msgNotStartedYet      = "интервью еще не началось"
)

type Handler struct {
	useCase CompleteInterviewUseCase
	logger  Logger
}

func NewHandler(useCase CompleteInterviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/interviews/{interviewId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	interviewID, err := strconv.ParseInt(mux.Vars(r)["interviewId"], 10, 64)
	if err != nil || interviewID <= 0 {
		h.logger.Warn("PATCH /interviews/{interviewId}/complete - Invalid interview ID: %s",
			mux.Vars(r)["interviewId"])
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeInterview.Request{
		InterviewID:   interviewID,
		InterviewerID: identity.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, completeInterview.ErrInterviewNotFound):
			h.logger.Warn("PATCH /interviews/%d/complete - Interview not found", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, completeInterview.ErrCannotComplete):
			h.logger.Warn("PATCH /interviews/%d/complete - Cannot complete", interviewID)
			handlers.RespondConflict(w, msgCannotComplete)

		case errors.Is(err, completeInterview.ErrNotStartedYet):
			h.logger.Warn("PATCH /interviews/%d/complete - Not started yet", interviewID)
			handlers.RespondConflict(w, msgNotStartedYet)

		case errors.Is(err, completeInterview.ErrInvalidInput):
			h.logger.Warn("PATCH /interviews/%d/complete - Invalid input: %v", interviewID, err)
			handlers.RespondBadRequest(w, msgInvalidInterviewID)

		default:
			h.logger.Error("PATCH /interviews/%d/complete - Failed: user_id=%d, error=%v",
				interviewID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /interviews/%d/complete - Completed: user_id=%d, earned=%d",
		interviewID, identity.UserID, result.PointsEarned)
	handlers.RespondJSON(w, http.StatusOK, result)
}
