package get_agenda

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// UseCase use case для внутренней агенды бронирований
type UseCase struct {
	reservationRepo ReservationRepository
	upcomingDays    int
	lookaheadDays   int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// upcomingDays - размер группы "ближайшие", lookaheadDays - горизонт загрузки от сегодняшнего дня
func NewUseCase(reservationRepo ReservationRepository, upcomingDays, lookaheadDays int, logger Logger) *UseCase {
	if upcomingDays <= 0 {
		upcomingDays = domain.DefaultAgendaUpcomingDays
	}
	if lookaheadDays < upcomingDays {
		lookaheadDays = max(upcomingDays, domain.DefaultAgendaLookaheadDays)
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		upcomingDays:    upcomingDays,
		lookaheadDays:   lookaheadDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute загружает окно [вчера, сегодня+lookaheadDays] и, если выбранная дата за его пределами,
// отдельно бронирования на эту дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Agenda, error) {
	exactDate := strings.TrimSpace(req.ExactDate)
	if exactDate != "" {
		d, err := calendar.ParseDate(exactDate)
		if err != nil {
			uc.logger.Warn("GetAgenda: invalid exact date %q", exactDate)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		exactDate = calendar.FormatDate(d)
	}

	now := uc.timeProvider.Now()
	today := calendar.Today(now)
	filter := domain.ReservationFilter{
		From: calendar.FormatDate(calendar.AddDays(today, -1)),
		To:   calendar.FormatDate(calendar.AddDays(today, uc.lookaheadDays)),
	}

	reservations, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to list reservations [%s, %s]: %v", filter.From, filter.To, err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	if exactDate != "" && !filter.Matches(exactDate) {
		extra, err := uc.reservationRepo.FindByDate(ctx, exactDate)
		if err != nil {
			uc.logger.Error("GetAgenda: failed to load reservations for %s: %v", exactDate, err)
			return nil, fmt.Errorf("%w: failed to load exact date: %v", ErrInternal, err)
		}
		reservations = append(reservations, extra...)
	}

	agenda := BuildAgenda(now, reservations, exactDate, uc.upcomingDays)

	uc.logger.Info("GetAgenda: today=%d, yesterday=%d, upcoming=%d, exact(%s)=%d",
		len(agenda.Today), len(agenda.Yesterday), len(agenda.Upcoming), exactDate, len(agenda.Exact))

	return &agenda, nil
}
