package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/fadeline/booking-service/internal/usecase/get_available_slots"
	"github.com/fadeline/booking-service/pkg/types"
)

type stubUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/providers/{providerId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			ProviderID: 7,
			Slots:      []types.TimeString{"09:00", "09:30", "10:30"},
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/providers/7/available-slots?date=2025-10-15&durationMinutes=30")

	require.Equal(t, http.StatusOK, rec.Code)

	var body SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, body.Slots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.ProviderID)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format("2006-01-02"))
	assert.Equal(t, 30, uc.gotReq.DurationMinutes)
}

func TestHandle_EmptySlotsIsStillOK(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{ProviderID: 7, Slots: []types.TimeString{}},
	}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/providers/7/available-slots?date=2025-10-19&durationMinutes=30")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots": []}`, rec.Body.String())
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantMsg string
	}{
		{
			name:    "non-numeric provider ID",
			url:     "/api/v1/providers/abc/available-slots?date=2025-10-15&durationMinutes=30",
			wantMsg: msgInvalidProviderID,
		},
		{
			name:    "missing date",
			url:     "/api/v1/providers/7/available-slots?durationMinutes=30",
			wantMsg: msgMissingDate,
		},
		{
			name:    "missing duration",
			url:     "/api/v1/providers/7/available-slots?date=2025-10-15",
			wantMsg: msgMissingDuration,
		},
		{
			name:    "malformed date",
			url:     "/api/v1/providers/7/available-slots?date=15.10.2025&durationMinutes=30",
			wantMsg: msgInvalidParams,
		},
		{
			name:    "non-numeric duration",
			url:     "/api/v1/providers/7/available-slots?date=2025-10-15&durationMinutes=half-hour",
			wantMsg: msgInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := serve(h, tt.url)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			assert.Nil(t, uc.gotReq, "use case must not be called")
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"provider not found", getAvailableSlots.ErrProviderNotFound, http.StatusNotFound},
		{"provider inactive", getAvailableSlots.ErrProviderInactive, http.StatusNotFound},
		{"date too far", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("db on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := NewHandler(uc, nopLogger{})

			rec := serve(h, "/api/v1/providers/7/available-slots?date=2025-10-15&durationMinutes=30")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_InternalErrorHidesDetail(t *testing.T) {
	uc := &stubUseCase{err: errors.New("pq: connection refused")}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/providers/7/available-slots?date=2025-10-15&durationMinutes=30")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
