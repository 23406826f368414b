package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Checker проверяет занятость слотов
// Слот занят, если на ту же дату и время начала есть хотя бы одно бронирование
// со статусом, отличным от "cancelada". Пересечения по длительности не учитываются.
type Checker struct {
	reservationRepo ReservationRepository
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(reservationRepo ReservationRepository) *Checker {
	return &Checker{reservationRepo: reservationRepo}
}

// IsSlotTaken сообщает, занят ли слот (fecha, horaInicio)
func (c *Checker) IsSlotTaken(ctx context.Context, date string, startTime types.TimeString) (bool, error) {
	reservations, err := c.reservationRepo.FindBySlot(ctx, date, startTime.String())
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - find by slot: %v", ErrInternal, err)
	}

	for _, r := range reservations {
		if r.IsActive() {
			return true, nil
		}
	}

	return false, nil
}

// TakenSlots возвращает занятые времена начала на дату
func (c *Checker) TakenSlots(ctx context.Context, date string) (map[types.TimeString]bool, error) {
	reservations, err := c.reservationRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: TakenSlots - find by date: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]bool, len(reservations))
	for _, r := range reservations {
		if r.IsActive() {
			taken[r.StartTime] = true
		}
	}

	return taken, nil
}
