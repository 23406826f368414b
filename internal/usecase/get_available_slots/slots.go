package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// generateTimeSlots генерирует времена начала с шагом в час от FirstStartHour до LastStartHour
// Для сегодняшней даты оставляет только слоты, которые еще не начались
func generateTimeSlots(requestDate time.Time, now time.Time) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	allSlots := make([]types.TimeString, 0, domain.LastStartHour-domain.FirstStartHour+1)
	for hour := domain.FirstStartHour; hour <= domain.LastStartHour; hour++ {
		slot, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, err
		}
		allSlots = append(allSlots, slot)
	}

	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	currentTime := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markTaken отмечает занятые слоты
func markTaken(slots []types.TimeString, taken map[types.TimeString]bool) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))
	for i, slot := range slots {
		result[i] = domain.AvailableSlot{
			StartTime: slot,
			Taken:     taken[slot],
		}
	}
	return result
}

// isSameDay проверяет, что requestDate (гражданская дата) совпадает с сегодняшней датой now
func isSameDay(requestDate, now time.Time) bool {
	return calendar.FormatDate(requestDate) == calendar.FormatDate(calendar.Today(now))
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(requestDate, now time.Time) bool {
	return requestDate.Before(calendar.Today(now))
}
