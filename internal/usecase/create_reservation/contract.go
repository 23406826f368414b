package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// AvailabilityChecker интерфейс проверки занятости слота
type AvailabilityChecker interface {
	IsSlotTaken(ctx context.Context, date string, startTime types.TimeString) (bool, error)
}

// OutcomeRecorder интерфейс для метрик исходов создания бронирования
type OutcomeRecorder interface {
	RecordReservationOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Исходы создания бронирования (значения label outcome)
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeWeekend  = "weekend"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

type noopRecorder struct{}

func (noopRecorder) RecordReservationOutcome(string) {}
