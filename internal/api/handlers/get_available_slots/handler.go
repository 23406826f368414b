package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "Indica la fecha de la consulta."
	msgInvalidDate = "La fecha no es válida. Usa el formato AAAA-MM-DD."
	msgPastDate    = "No quedan horarios disponibles para esa fecha."
)

type Handler struct {
	useCase        GetAvailableSlotsUseCase
	weekendMessage string
	logger         Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, weekendContact string, logger Logger) *Handler {
	return &Handler{
		useCase:        useCase,
		weekendMessage: handlers.WeekendMessage(weekendContact),
		logger:         logger,
	}
}

// Handle GET /api/v1/availability
// Query params: fecha (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fecha := strings.TrimSpace(r.URL.Query().Get("fecha"))
	if fecha == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: fecha})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: fecha=%s", fecha)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get slots: fecha=%s, error=%v", fecha, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := ""
	switch {
	case result.Weekend:
		message = h.weekendMessage
	case result.Past || len(result.Slots) == 0:
		message = msgPastDate
	}

	h.logger.Info("GET /availability - Slots retrieved successfully: fecha=%s, slots_count=%d", result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, message))
}
