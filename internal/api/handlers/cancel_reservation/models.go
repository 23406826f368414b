package cancel_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ID      string `json:"id"`
	Estado  string `json:"estado"`
	Message string `json:"message"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.StatusResponse) *CancelReservationResponse {
	return &CancelReservationResponse{
		ID:      resp.ID,
		Estado:  resp.Estado,
		Message: msgCancelled,
	}
}
