package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memreservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type failingUseCase struct{}

func (failingUseCase) Execute(context.Context, *createReservation.Request) (*createReservation.Response, error) {
	return nil, errors.New("store unavailable")
}

func newHandler() *Handler {
	repo := memreservation.NewRepository()
	silent := logger.NewWithWriter(io.Discard, logger.LevelError)
	uc := createReservation.NewUseCase(repo, availability.NewChecker(repo), nil, silent)
	return NewHandler(uc, "+507 6215-9551", silent)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

const validBody = `{
	"nombre": "Ana Pérez",
	"edad": "34",
	"email": "ana@example.com",
	"telefono": "+507 6000-0000",
	"fecha": "2024-06-10",
	"horaInicio": "10:00",
	"duracionHoras": 2
}`

func TestHandler_Created(t *testing.T) {
	rec := post(newHandler(), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 120, resp.PrecioTotal)
	assert.Equal(t, msgCreated, resp.Message)
}

func TestHandler_Conflict(t *testing.T) {
	h := newHandler()

	require.Equal(t, http.StatusCreated, post(h, validBody).Code)

	rec := post(h, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, msgSlotNotAvailable, decodeMessage(t, rec))
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "broken json",
			body:    `{"nombre":`,
			wantMsg: msgInvalidRequestBody,
		},
		{
			name:    "boolean duration",
			body:    `{"duracionHoras": true}`,
			wantMsg: msgInvalidRequestBody,
		},
		{
			name:    "missing fields",
			body:    `{"nombre":"Ana","fecha":"2024-06-10","horaInicio":"10:00","duracionHoras":1}`,
			wantMsg: msgMissingFields,
		},
		{
			name:    "weekend",
			body:    strings.Replace(validBody, "2024-06-10", "2024-06-08", 1),
			wantMsg: "Las reservas de sábado y domingo se gestionan por WhatsApp. Por favor escribe a +507 6215-9551.",
		},
		{
			name:    "invalid date",
			body:    strings.Replace(validBody, "2024-06-10", "10/06/2024", 1),
			wantMsg: msgInvalidDate,
		},
		{
			name:    "invalid start time",
			body:    strings.Replace(validBody, `"10:00"`, `"21:00"`, 1),
			wantMsg: msgInvalidStartTime,
		},
		{
			name:    "invalid duration",
			body:    strings.Replace(validBody, `"duracionHoras": 2`, `"duracionHoras": "5"`, 1),
			wantMsg: msgInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(newHandler(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

func TestHandler_InternalError(t *testing.T) {
	h := NewHandler(failingUseCase{}, "+507 6215-9551", logger.NewWithWriter(io.Discard, logger.LevelError))

	rec := post(h, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgCreateFailed, decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "store unavailable")
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		raw     string
		want    FlexString
		wantErr bool
	}{
		{raw: `2`, want: "2"},
		{raw: `2.5`, want: "2.5"},
		{raw: `"3"`, want: "3"},
		{raw: `"tres"`, want: "tres"},
		{raw: `null`, want: ""},
		{raw: `true`, wantErr: true},
		{raw: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var f FlexString
			err := json.Unmarshal([]byte(tt.raw), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}
