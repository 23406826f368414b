package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// UseCase use case для создания бронирования из публичной формы
type UseCase struct {
	reservationRepo ReservationRepository
	checker         AvailabilityChecker
	outcomes        OutcomeRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// outcomes может быть nil, тогда исходы не считаются
func NewUseCase(
	reservationRepo ReservationRepository,
	checker AvailabilityChecker,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	if outcomes == nil {
		outcomes = noopRecorder{}
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		outcomes:        outcomes,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки выполняются по порядку, первая неуспешная прерывает выполнение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, duration=%s", req.Date, req.StartTime, req.DurationHours)

	// 1. Обязательные поля
	if err := validateRequired(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.outcomes.RecordReservationOutcome(OutcomeInvalid)
		return nil, err
	}

	// 2. Дата и выходные
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateReservation: date rejected: %v", err)
		if errors.Is(err, ErrWeekendNotBookable) {
			uc.outcomes.RecordReservationOutcome(OutcomeWeekend)
		} else {
			uc.outcomes.RecordReservationOutcome(OutcomeInvalid)
		}
		return nil, err
	}
	fecha := calendar.FormatDate(date)

	// 3. Время начала
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateReservation: start time rejected: %v", err)
		uc.outcomes.RecordReservationOutcome(OutcomeInvalid)
		return nil, err
	}

	// 4. Занятость слота
	taken, err := uc.checker.IsSlotTaken(ctx, fecha, startTime)
	if err != nil {
		uc.logger.Error("CreateReservation: availability check failed for %s %s: %v", fecha, startTime, err)
		uc.outcomes.RecordReservationOutcome(OutcomeError)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	if taken {
		uc.logger.Warn("CreateReservation: slot %s %s already has an active reservation", fecha, startTime)
		uc.outcomes.RecordReservationOutcome(OutcomeConflict)
		return nil, ErrSlotNotAvailable
	}

	// 5. Нормализация
	durationHours, err := parseDuration(req.DurationHours)
	if err != nil {
		uc.logger.Warn("CreateReservation: duration rejected: %v", err)
		uc.outcomes.RecordReservationOutcome(OutcomeInvalid)
		return nil, err
	}

	phone := strings.TrimSpace(req.Phone)
	whatsApp := strings.TrimSpace(req.WhatsApp)
	if whatsApp == "" {
		whatsApp = phone
	}

	reservation := &domain.Reservation{
		Name:          strings.TrimSpace(req.Name),
		Age:           parseAge(req.Age),
		Email:         strings.TrimSpace(req.Email),
		Phone:         phone,
		WhatsApp:      whatsApp,
		Comment:       strings.TrimSpace(req.Comment),
		Date:          fecha,
		StartTime:     startTime,
		DurationHours: durationHours,
		// 6. Цена фиксируется при создании
		TotalPrice: domain.TotalPrice(durationHours),
		Status:     domain.StatusPending,
	}

	// 7. Сохранение
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, storage.ErrSlotTaken) {
			// Параллельный запрос занял слот между проверкой и записью
			uc.logger.Warn("CreateReservation: slot %s %s taken concurrently", fecha, startTime)
			uc.outcomes.RecordReservationOutcome(OutcomeConflict)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		uc.outcomes.RecordReservationOutcome(OutcomeError)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%s for %s %s, %dh, price=%d",
		created.ID, fecha, startTime, created.DurationHours, created.TotalPrice)
	uc.outcomes.RecordReservationOutcome(OutcomeCreated)

	return &Response{
		ID:          created.ID,
		TotalPrice:  created.TotalPrice,
		Reservation: created,
	}, nil
}
