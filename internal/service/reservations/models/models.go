package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// Request модели

// ListRequest запрос на получение бронирований за период
// Обе границы необязательны и включительны
type ListRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Estado string `json:"estado"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            string     `json:"id"`
	Nombre        string     `json:"nombre"`
	Edad          *int       `json:"edad,omitempty"`
	Email         string     `json:"email"`
	Telefono      string     `json:"telefono"`
	Whatsapp      string     `json:"whatsapp"`
	Comentario    string     `json:"comentario"`
	Fecha         string     `json:"fecha"`      // "2024-06-10"
	FechaLabel    string     `json:"fechaLabel"` // "Lunes · 10 de junio 2024"
	HoraInicio    string     `json:"horaInicio"` // "10:00"
	DuracionHoras int        `json:"duracionHoras"`
	PrecioTotal   int        `json:"precioTotal"`
	Estado        string     `json:"estado"`
	EstadoLabel   string     `json:"estadoLabel"`
	Cancelable    bool       `json:"cancelable"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// StatusResponse ответ после изменения статуса
type StatusResponse struct {
	ID     string `json:"id"`
	Estado string `json:"estado"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Статус нормализуется для отображения: пустой или неизвестный показывается как "pendiente"
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	status := r.Status.Normalize()

	return &ReservationResponse{
		ID:            r.ID,
		Nombre:        r.Name,
		Edad:          r.Age,
		Email:         r.Email,
		Telefono:      r.Phone,
		Whatsapp:      r.WhatsApp,
		Comentario:    r.Comment,
		Fecha:         r.Date,
		FechaLabel:    calendar.HumanLabel(r.Date),
		HoraInicio:    r.StartTime.String(),
		DuracionHoras: r.DurationHours,
		PrecioTotal:   r.TotalPrice,
		Estado:        string(status),
		EstadoLabel:   status.Label(),
		Cancelable:    status != domain.StatusCancelled,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
