package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// UseCase use case для получения слотов на дату для публичной формы
type UseCase struct {
	checker      AvailabilityChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		checker:      checker,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация даты
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	fecha := calendar.FormatDate(date)
	resp := &Response{
		Date:      fecha,
		DateLabel: calendar.HumanLabel(fecha),
		Slots:     []domain.AvailableSlot{},
	}

	// 2. Выходные обрабатываются вручную
	if calendar.IsWeekend(date) {
		uc.logger.Info("GetAvailableSlots: %s is a weekend day, no slots", fecha)
		resp.Weekend = true
		return resp, nil
	}

	// 3. Генерируем временные слоты
	now := uc.timeProvider.Now()
	timeSlots, err := generateTimeSlots(date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}
	if len(timeSlots) == 0 {
		resp.Past = isDateInPast(date, now)
		uc.logger.Info("GetAvailableSlots: no slots left for %s", fecha)
		return resp, nil
	}

	// 4. Отмечаем занятые
	taken, err := uc.checker.TakenSlots(ctx, fecha)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get taken slots for %s: %v", fecha, err)
		return nil, fmt.Errorf("%w: failed to get taken slots: %v", ErrInternal, err)
	}

	resp.Slots = markTaken(timeSlots, taken)

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s, %d taken", len(resp.Slots), fecha, len(taken))
	return resp, nil
}
