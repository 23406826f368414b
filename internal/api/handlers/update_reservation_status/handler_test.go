package update_reservation_status

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memreservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func setup(t *testing.T) (*Handler, *memreservation.Repository) {
	t.Helper()
	repo := memreservation.NewRepository()
	silent := logger.NewWithWriter(io.Discard, logger.LevelError)
	return NewHandler(reservations.NewService(repo, silent), silent), repo
}

func seed(t *testing.T, repo *memreservation.Repository, start types.TimeString) *domain.Reservation {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Reservation{
		Name:          "Ana",
		Date:          "2024-06-10",
		StartTime:     start,
		DurationHours: 1,
		TotalPrice:    60,
		Status:        domain.StatusPending,
	})
	require.NoError(t, err)
	return created
}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id, reader)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantEstado domain.ReservationStatus
	}{
		{name: "explicit status", body: `{"estado":"confirmada"}`, wantEstado: domain.StatusConfirmed},
		{name: "empty body cancels", body: "", wantEstado: domain.StatusCancelled},
		{name: "blank status cancels", body: `{"estado":"  "}`, wantEstado: domain.StatusCancelled},
		{name: "broken json cancels", body: `{"estado":`, wantEstado: domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := setup(t)
			created := seed(t, repo, "10:00")

			rec := patch(h, created.ID, tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp UpdateStatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, created.ID, resp.ID)
			assert.Equal(t, string(tt.wantEstado), resp.Estado)
			assert.Equal(t, msgUpdated, resp.Message)

			stored, err := repo.GetByID(context.Background(), created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEstado, stored.Status)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	h, repo := setup(t)
	cancelled := seed(t, repo, "10:00")
	require.NoError(t, repo.UpdateStatus(context.Background(), cancelled.ID, domain.StatusCancelled))
	seed(t, repo, "10:00")

	rec := patch(h, "", `{"estado":"confirmada"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgMissingID+`"}`, rec.Body.String())

	rec = patch(h, "missing", `{"estado":"confirmada"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgNotFound+`"}`, rec.Body.String())

	rec = patch(h, cancelled.ID, `{"estado":"pendiente"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"`+msgSlotTaken+`"}`, rec.Body.String())
}
