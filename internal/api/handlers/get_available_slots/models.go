package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Fecha      string          `json:"fecha"`
	FechaLabel string          `json:"fechaLabel"`
	Weekend    bool            `json:"weekend"`
	Past       bool            `json:"past"`
	Message    string          `json:"message,omitempty"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	HoraInicio string `json:"horaInicio"`
	Disponible bool   `json:"disponible"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, message string) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			HoraInicio: slot.StartTime.String(),
			Disponible: slot.IsFree(),
		}
	}

	return &AvailableSlotsResponse{
		Fecha:      resp.Date,
		FechaLabel: resp.DateLabel,
		Weekend:    resp.Weekend,
		Past:       resp.Past,
		Message:    message,
		Slots:      slots,
	}
}
