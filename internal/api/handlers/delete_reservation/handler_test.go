package delete_reservation

import (
	"context"
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
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

func remove(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	repo := memreservation.NewRepository()
	silent := logger.NewWithWriter(io.Discard, logger.LevelError)
	h := NewHandler(reservations.NewService(repo, silent), silent)

	created, err := repo.Create(context.Background(), &domain.Reservation{
		Name:      "Ana",
		Date:      "2024-06-10",
		StartTime: "10:00",
		Status:    domain.StatusPending,
	})
	require.NoError(t, err)

	rec := remove(h, created.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+created.ID+`","message":"`+msgDeleted+`"}`, rec.Body.String())

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.Error(t, err)

	rec = remove(h, created.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgNotFound+`"}`, rec.Body.String())

	rec = remove(h, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgMissingID+`"}`, rec.Body.String())
}
