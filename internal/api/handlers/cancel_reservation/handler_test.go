package cancel_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memreservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type brokenService struct{}

func (brokenService) Cancel(context.Context, string) (*models.StatusResponse, error) {
	return nil, errors.Join(reservations.ErrInternal, errors.New("pq: connection refused"))
}

func cancel(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_CancelTwice(t *testing.T) {
	repo := memreservation.NewRepository()
	silent := logger.NewWithWriter(io.Discard, logger.LevelError)
	h := NewHandler(reservations.NewService(repo, silent), silent)

	created, err := repo.Create(context.Background(), &domain.Reservation{
		Name:          "Ana",
		Date:          "2024-06-10",
		StartTime:     "10:00",
		DurationHours: 1,
		TotalPrice:    60,
		Status:        domain.StatusConfirmed,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		rec := cancel(h, created.ID)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CancelReservationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, CancelReservationResponse{ID: created.ID, Estado: "cancelada", Message: msgCancelled}, resp)
	}

	assert.Equal(t, http.StatusNotFound, cancel(h, "missing").Code)
	assert.Equal(t, http.StatusBadRequest, cancel(h, "").Code)
}

func TestHandler_InternalError(t *testing.T) {
	h := NewHandler(brokenService{}, logger.NewWithWriter(io.Discard, logger.LevelError))

	rec := cancel(h, "some-id")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}
