package get_available_slots

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request модель запроса на получение слотов
type Request struct {
	Date string // "2024-06-10"
}

// Response модель ответа со слотами на дату
type Response struct {
	Date      string                 // Нормализованная дата "YYYY-MM-DD"
	DateLabel string                 // "Lunes · 10 de junio 2024"
	Weekend   bool                   // Выходные: запись только через WhatsApp, слотов нет
	Past      bool                   // Дата в прошлом, слотов нет
	Slots     []domain.AvailableSlot // 08:00-19:00, для сегодняшней даты только еще не начавшиеся
}
