package delete_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgDeleted   = "Reserva eliminada correctamente."
	msgMissingID = "ID de reserva no proporcionado."
	msgNotFound  = "Reserva no encontrada."
)

// DeleteReservationResponse HTTP response model
type DeleteReservationResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

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

// Handle DELETE /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.logger.Warn("DELETE /reservations/{id} - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingID)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted successfully: reservation_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, &DeleteReservationResponse{ID: id, Message: msgDeleted})
}
