package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/api/handlers"
	"github.com/prepmate/MIP-BookingService/internal/api/middleware"
	"github.com/prepmate/MIP-BookingService/internal/service/ledger"
	createBooking "github.com/prepmate/MIP-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// serve прогоняет запрос через Auth (fallback на заголовки) и handler
func serve(uc *fakeUseCase, userID string, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	protected := middleware.Auth("secret")(http.HandlerFunc(h.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:          1,
		SlotID:      5,
		CandidateID: 2,
		PointsSpent: 10,
		Status:      "created",
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	rec := serve(uc, "2", `{"slotId": 5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Кандидат берется из аутентификации, а не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(2), uc.gotReq.CandidateID)
	assert.Equal(t, int64(5), uc.gotReq.SlotID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, now.Format(time.RFC3339), resp.CreatedAt)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := serve(&fakeUseCase{}, "", `{"slotId": 5}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := serve(&fakeUseCase{}, "2", `{"slotId": "five"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	rec := serve(&fakeUseCase{}, "2", `{"slotId": 5, "candidateId": 99}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot not found", createBooking.ErrSlotNotFound, http.StatusNotFound},
		{"slot not available", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"slot in past", createBooking.ErrSlotInPast, http.StatusConflict},
		{"own slot", createBooking.ErrOwnSlot, http.StatusConflict},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "2", `{"slotId": 5}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InsufficientBalanceDetails(t *testing.T) {
	uc := &fakeUseCase{err: &ledger.InsufficientBalanceError{Required: 10, Available: 3}}

	rec := serve(uc, "2", `{"slotId": 5}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	details, ok := resp.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "10", formatNumber(details["required"]))
	assert.Equal(t, "3", formatNumber(details["available"]))
}

func formatNumber(v interface{}) string {
	f, _ := v.(float64)
	return strconv.FormatInt(int64(f), 10)
}
