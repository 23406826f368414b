package get_reservation

import (
	"context"
	"encoding/json"
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
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func get(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil)
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
		Name:          "Ana",
		Age:           ptr.Ptr(34),
		Email:         "ana@example.com",
		Phone:         "+507 6000-0000",
		WhatsApp:      "+507 6000-0000",
		Date:          "2024-06-10",
		StartTime:     "10:00",
		DurationHours: 2,
		TotalPrice:    120,
		Status:        domain.StatusConfirmed,
	})
	require.NoError(t, err)

	rec := get(h, created.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Ana", resp.Nombre)
	assert.Equal(t, ptr.Ptr(34), resp.Edad)
	assert.Equal(t, "Lunes · 10 de junio 2024", resp.FechaLabel)
	assert.Equal(t, "10:00", resp.HoraInicio)
	assert.Equal(t, 120, resp.PrecioTotal)
	assert.Equal(t, "confirmada", resp.Estado)
	assert.True(t, resp.Cancelable)

	rec = get(h, "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgNotFound+`"}`, rec.Body.String())

	rec = get(h, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
