package update_reservation_status

import (
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Estado string `json:"estado"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID      string `json:"id"`
	Estado  string `json:"estado"`
	Message string `json:"message"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// Пустой статус означает отмену
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	estado := strings.TrimSpace(r.Estado)
	if estado == "" {
		estado = string(domain.StatusCancelled)
	}
	return &models.UpdateStatusRequest{Estado: estado}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.StatusResponse, message string) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:      resp.ID,
		Estado:  resp.Estado,
		Message: message,
	}
}
