package get_agenda

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// BuildAgenda раскладывает бронирования по группам: сегодня, вчера, ближайшие upcomingDays дней
// и выбранная дата. Статусы не фильтруются, каждая группа отсортирована по дате и времени.
func BuildAgenda(now time.Time, reservations []*domain.Reservation, exactDate string, upcomingDays int) Agenda {
	today := calendar.Today(now)

	agenda := Agenda{
		TodayDate:     calendar.FormatDate(today),
		YesterdayDate: calendar.FormatDate(calendar.AddDays(today, -1)),
		UpcomingUntil: calendar.FormatDate(calendar.AddDays(today, upcomingDays)),
		ExactDate:     exactDate,
		Today:         []*domain.Reservation{},
		Yesterday:     []*domain.Reservation{},
		Upcoming:      []*domain.Reservation{},
		Exact:         []*domain.Reservation{},
	}

	for _, r := range reservations {
		// ISO-даты сравниваются как строки
		switch {
		case r.Date == agenda.TodayDate:
			agenda.Today = append(agenda.Today, r)
		case r.Date == agenda.YesterdayDate:
			agenda.Yesterday = append(agenda.Yesterday, r)
		case r.Date > agenda.TodayDate && r.Date <= agenda.UpcomingUntil:
			agenda.Upcoming = append(agenda.Upcoming, r)
		}

		if exactDate != "" && r.Date == exactDate {
			agenda.Exact = append(agenda.Exact, r)
		}
	}

	domain.SortReservations(agenda.Today)
	domain.SortReservations(agenda.Yesterday)
	domain.SortReservations(agenda.Upcoming)
	domain.SortReservations(agenda.Exact)

	return agenda
}
