package update_reservation_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgUpdated   = "Reserva actualizada correctamente."
	msgMissingID = "ID de reserva no proporcionado."
	msgNotFound  = "Reserva no encontrada."
	msgSlotTaken = "Ya existe otra reserva activa para ese día y esa hora."
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

// Handle PATCH /api/v1/reservations/{id}
// Тело {"estado": "..."} необязательно: пустое или нечитаемое тело означает "cancelada"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.logger.Warn("PATCH /reservations/{id} - Missing reservation ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if !errors.Is(err, handlers.ErrEmptyBody) {
			h.logger.Warn("PATCH /reservations/{id} - Unreadable body, falling back to cancel: reservation_id=%s, error=%v", id, err)
		}
		req = UpdateStatusRequest{}
	}

	result, err := h.service.UpdateStatus(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingID)

		case errors.Is(err, reservations.ErrSlotTaken):
			h.logger.Warn("PATCH /reservations/{id} - Slot taken by another reservation: reservation_id=%s", id)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%s, estado=%s",
		id, result.Estado)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result, msgUpdated))
}
