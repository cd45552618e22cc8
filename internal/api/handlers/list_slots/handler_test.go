package list_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/service/slots/models"
)

type fakeService struct {
	gotReq *models.ListSlotsRequest
	resp   *models.SlotListResponse
	err    error
}

func (f *fakeService) List(_ context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
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

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}

	rec := serve(svc, "/api/v1/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.False(t, svc.gotReq.IncludePast)
	assert.Nil(t, svc.gotReq.InterviewerID)
}

func TestHandle_ParsesFilter(t *testing.T) {
	svc := &fakeService{resp: &models.SlotListResponse{Slots: []models.SlotResponse{}}}

	rec := serve(svc, "/api/v1/slots?interviewerId=7&specialization=Go&status=available"+
		"&from=2026-03-10T00:00:00Z&to=2026-03-20T00:00:00Z&includePast=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	require.NotNil(t, svc.gotReq.InterviewerID)
	assert.Equal(t, int64(7), *svc.gotReq.InterviewerID)
	require.NotNil(t, svc.gotReq.Specialization)
	assert.Equal(t, "Go", *svc.gotReq.Specialization)
	require.NotNil(t, svc.gotReq.Status)
	assert.Equal(t, "available", *svc.gotReq.Status)
	require.NotNil(t, svc.gotReq.From)
	require.NotNil(t, svc.gotReq.To)
	assert.True(t, svc.gotReq.IncludePast)
}

func TestHandle_InvalidQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"bad interviewerId", "/api/v1/slots?interviewerId=abc"},
		{"bad from", "/api/v1/slots?from=tomorrow"},
		{"bad includePast", "/api/v1/slots?includePast=yes-please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{}, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
