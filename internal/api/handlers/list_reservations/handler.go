package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidDate = "Las fechas del filtro no son válidas. Usa el formato AAAA-MM-DD."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: from, to (optional, YYYY-MM-DD, inclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid date range: from=%s, to=%s", req.From, req.To)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: from=%s, to=%s, error=%v",
				req.From, req.To, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: from=%s, to=%s, count=%d",
		req.From, req.To, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
