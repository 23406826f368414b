package create_reservation

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request модель запроса на создание бронирования
// Числовые поля приходят из формы как есть и нормализуются в usecase
type Request struct {
	Name          string // nombre
	Email         string // email
	Phone         string // telefono
	WhatsApp      string // whatsapp, по умолчанию telefono
	Comment       string // comentario
	Age           string // edad, необязательное положительное число
	Date          string // fecha, "2024-06-10"
	StartTime     string // horaInicio, "10:00"
	DurationHours string // duracionHoras, 1-3
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	TotalPrice  int
	Reservation *domain.Reservation
}
