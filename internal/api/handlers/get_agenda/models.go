package get_agenda

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	getAgenda "github.com/m04kA/SMC-ReservationService/internal/usecase/get_agenda"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// AgendaResponse HTTP response model
type AgendaResponse struct {
	TodayDate      string `json:"todayDate"`
	TodayLabel     string `json:"todayLabel"`
	YesterdayDate  string `json:"yesterdayDate"`
	YesterdayLabel string `json:"yesterdayLabel"`
	UpcomingUntil  string `json:"upcomingUntil"`
	ExactDate      string `json:"exactDate,omitempty"`
	ExactLabel     string `json:"exactLabel,omitempty"`

	Today     []models.ReservationResponse `json:"today"`
	Yesterday []models.ReservationResponse `json:"yesterday"`
	Upcoming  []models.ReservationResponse `json:"upcoming"`
	Exact     []models.ReservationResponse `json:"exact"`
}

// FromUseCaseResponse конвертирует агенду в HTTP response
func FromUseCaseResponse(agenda *getAgenda.Agenda) *AgendaResponse {
	resp := &AgendaResponse{
		TodayDate:      agenda.TodayDate,
		TodayLabel:     calendar.HumanLabel(agenda.TodayDate),
		YesterdayDate:  agenda.YesterdayDate,
		YesterdayLabel: calendar.HumanLabel(agenda.YesterdayDate),
		UpcomingUntil:  agenda.UpcomingUntil,
		ExactDate:      agenda.ExactDate,
		Today:          toItems(agenda.Today),
		Yesterday:      toItems(agenda.Yesterday),
		Upcoming:       toItems(agenda.Upcoming),
		Exact:          toItems(agenda.Exact),
	}
	if agenda.ExactDate != "" {
		resp.ExactLabel = calendar.HumanLabel(agenda.ExactDate)
	}
	return resp
}

func toItems(reservations []*domain.Reservation) []models.ReservationResponse {
	return models.FromDomainReservationList(reservations).Reservations
}
