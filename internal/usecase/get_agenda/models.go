package get_agenda

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request модель запроса агенды
type Request struct {
	ExactDate string // Необязательная выбранная дата "YYYY-MM-DD"
}

// Agenda бронирования, разложенные по группам относительно сегодняшнего дня
// Одно бронирование может попасть в несколько групп (например, сегодня и выбранная дата)
type Agenda struct {
	TodayDate     string
	YesterdayDate string
	UpcomingUntil string // Последний день группы "ближайшие", включительно
	ExactDate     string // Пусто, если дата не выбрана

	Today     []*domain.Reservation
	Yesterday []*domain.Reservation
	Upcoming  []*domain.Reservation // today < fecha <= today+N
	Exact     []*domain.Reservation
}
