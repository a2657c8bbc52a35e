package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadeline/booking-service/internal/api/middleware"
	createAppointment "github.com/fadeline/booking-service/internal/usecase/create_appointment"
	"github.com/fadeline/booking-service/pkg/types"
)

type stubUseCase struct {
	gotReq *createAppointment.Request
	resp   *createAppointment.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
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

func serve(h *Handler, clientRef, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if clientRef != "" {
		req.Header.Set(middleware.ClientRefHeader, clientRef)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func confirmedResponse() *createAppointment.Response {
	created := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	return &createAppointment.Response{
		ID:              101,
		Reference:       "5e0cf0f6-6ac5-4c4c-9a86-97b307a7be41",
		ProviderID:      7,
		ClientRef:       "client-42",
		Date:            time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          "confirmed",
		Services:        []string{"haircut"},
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{resp: confirmedResponse()}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "client-42", `{
		"providerId": 7,
		"startTime": "2025-10-15T10:00:00Z",
		"durationMinutes": 30,
		"services": ["haircut"]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(101), body.ID)
	assert.Equal(t, "5e0cf0f6-6ac5-4c4c-9a86-97b307a7be41", body.Reference)
	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "confirmed", body.Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "client-42", uc.gotReq.ClientRef, "client ref must come from the header")
	assert.Equal(t, types.TimeString("10:00"), uc.gotReq.StartTime)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format("2006-01-02"))
}

func TestHandle_StartTimeKeepsItsOwnOffset(t *testing.T) {
	// 2025-10-15T09:30:00+02:00 books the 09:30 slot on the 15th as the
	// shop sees it, not the UTC rendering (07:30).
	uc := &stubUseCase{resp: confirmedResponse()}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "client-42", `{
		"providerId": 7,
		"startTime": "2025-10-15T09:30:00+02:00",
		"durationMinutes": 30,
		"services": ["haircut"]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, types.TimeString("09:30"), uc.gotReq.StartTime)
	assert.Equal(t, "2025-10-15", uc.gotReq.Date.Format("2006-01-02"))
	assert.Equal(t, time.UTC, uc.gotReq.Date.Location(), "dates are anchored like stored appointment dates")
}

func TestHandle_MissingClientRef(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "", `{"providerId": 7, "startTime": "2025-10-15T10:00:00Z", "durationMinutes": 30, "services": ["haircut"]}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `providerId=7`},
		{"unknown field", `{"providerId": 7, "startTime": "2025-10-15T10:00:00Z", "durationMinutes": 30, "services": ["haircut"], "carModel": "unknown"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := serve(h, "client-42", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), msgInvalidRequestBody)
			assert.Nil(t, uc.gotReq)
		})
	}
}

func TestHandle_BadStartTime(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "client-42", `{"providerId": 7, "startTime": "2025-10-15 10:00", "durationMinutes": 30, "services": ["haircut"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidStartTime)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrSlotConflict}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "client-42", `{"providerId": 7, "startTime": "2025-10-15T10:00:00Z", "durationMinutes": 30, "services": ["haircut"]}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSlotTaken)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"provider not found", createAppointment.ErrProviderNotFound, http.StatusNotFound},
		{"provider inactive", createAppointment.ErrProviderInactive, http.StatusNotFound},
		{"shop closed", createAppointment.ErrShopClosed, http.StatusBadRequest},
		{"outside business hours", createAppointment.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"slot in past", createAppointment.ErrSlotInPast, http.StatusBadRequest},
		{"too soon", createAppointment.ErrTooSoon, http.StatusBadRequest},
		{"date too far", createAppointment.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("tx deadline exceeded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := NewHandler(uc, nopLogger{})

			rec := serve(h, "client-42", `{"providerId": 7, "startTime": "2025-10-15T10:00:00Z", "durationMinutes": 30, "services": ["haircut"]}`)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
