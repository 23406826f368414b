package create_reservation

import (
	"bytes"
	"encoding/json"
	"strconv"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// FlexString поле формы, которое может прийти числом, строкой или null
type FlexString string

// UnmarshalJSON принимает "2", 2, 2.5 и null
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Nombre        string     `json:"nombre"`
	Edad          FlexString `json:"edad"`
	Email         string     `json:"email"`
	Telefono      string     `json:"telefono"`
	Whatsapp      string     `json:"whatsapp"`
	Comentario    string     `json:"comentario"`
	Fecha         string     `json:"fecha"`      // "2024-06-10"
	HoraInicio    string     `json:"horaInicio"` // "10:00"
	DuracionHoras FlexString `json:"duracionHoras"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ID          string `json:"id"`
	PrecioTotal int    `json:"precioTotal"`
	Message     string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Name:          r.Nombre,
		Email:         r.Email,
		Phone:         r.Telefono,
		WhatsApp:      r.Whatsapp,
		Comment:       r.Comentario,
		Age:           string(r.Edad),
		Date:          r.Fecha,
		StartTime:     r.HoraInicio,
		DurationHours: string(r.DuracionHoras),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		ID:          resp.ID,
		PrecioTotal: resp.TotalPrice,
		Message:     msgCreated,
	}
}
