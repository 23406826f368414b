package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgCreated            = "Reserva creada correctamente."
	msgInvalidRequestBody = "No pudimos leer los datos de la reserva."
	msgMissingFields      = "Faltan campos obligatorios en la reserva."
	msgInvalidDate        = "La fecha de la reserva no es válida. Usa el formato AAAA-MM-DD."
	msgInvalidStartTime   = "La hora de inicio debe ser una hora en punto entre las 08:00 y las 19:00."
	msgInvalidDuration    = "La duración de la consulta debe ser de 1 a 3 horas."
	msgSlotNotAvailable   = "Ya existe una reserva activa para ese día y esa hora. Elige otro horario, por favor."
	msgCreateFailed       = "No pudimos registrar tu reserva en este momento. Intenta de nuevo en unos minutos."
)

type Handler struct {
	useCase        CreateReservationUseCase
	weekendMessage string
	logger         Logger
}

func NewHandler(useCase CreateReservationUseCase, weekendContact string, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		weekendMessage: handlers.WeekendMessage(weekendContact),
		logger:         logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrMissingFields):
			h.logger.Warn("POST /reservations - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrWeekendNotBookable):
			h.logger.Warn("POST /reservations - Weekend date: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, h.weekendMessage)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidStartTime):
			h.logger.Warn("POST /reservations - Invalid start time: horaInicio=%s", req.HoraInicio)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createReservation.ErrInvalidDuration):
			h.logger.Warn("POST /reservations - Invalid duration: duracionHoras=%s", req.DuracionHoras)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: fecha=%s, horaInicio=%s", req.Fecha, req.HoraInicio)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: fecha=%s, horaInicio=%s, error=%v",
				req.Fecha, req.HoraInicio, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, fecha=%s, horaInicio=%s",
		result.ID, req.Fecha, req.HoraInicio)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
