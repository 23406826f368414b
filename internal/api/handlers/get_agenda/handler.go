package get_agenda

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAgenda "github.com/m04kA/SMC-ReservationService/internal/usecase/get_agenda"
)

const (
	msgInvalidDate = "La fecha seleccionada no es válida. Usa el formato AAAA-MM-DD."
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda
// Query params: fecha (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fecha := r.URL.Query().Get("fecha")

	agenda, err := h.useCase.Execute(r.Context(), &getAgenda.Request{ExactDate: fecha})
	if err != nil {
		switch {
		case errors.Is(err, getAgenda.ErrInvalidDate):
			h.logger.Warn("GET /agenda - Invalid date: fecha=%s", fecha)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /agenda - Failed to build agenda: fecha=%s, error=%v", fecha, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda - Agenda retrieved successfully: today=%s, fecha=%s", agenda.TodayDate, agenda.ExactDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(agenda))
}
