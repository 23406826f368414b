package availability

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	FindBySlot(ctx context.Context, date string, startTime string) ([]*domain.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
}
