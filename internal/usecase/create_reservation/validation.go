package create_reservation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequired проверяет наличие обязательных полей
func validateRequired(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"nombre", req.Name},
		{"email", req.Email},
		{"telefono", req.Phone},
		{"fecha", req.Date},
		{"horaInicio", req.StartTime},
		{"duracionHoras", req.DurationHours},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrMissingFields, field.name)
		}
	}

	return nil
}

// parseDate разбирает дату и отклоняет выходные
func parseDate(raw string) (time.Time, error) {
	date, err := calendar.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if calendar.IsWeekend(date) {
		return time.Time{}, ErrWeekendNotBookable
	}

	return date, nil
}

// parseStartTime проверяет, что время начала ровно на час в диапазоне формы
func parseStartTime(raw string) (types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	if startTime.Minute() != 0 {
		return "", fmt.Errorf("%w: %s is not on the hour", ErrInvalidStartTime, startTime)
	}

	if hour := startTime.Hour(); hour < domain.FirstStartHour || hour > domain.LastStartHour {
		return "", fmt.Errorf("%w: %s is outside %02d:00-%02d:00",
			ErrInvalidStartTime, startTime, domain.FirstStartHour, domain.LastStartHour)
	}

	return startTime, nil
}

// parseDuration приводит длительность к целому числу часов
// Нечисловое значение и ноль после отбрасывания дробной части считаются 1 часом
func parseDuration(raw string) (int, error) {
	hours := float64(domain.DefaultDurationHours)

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && !math.IsNaN(f) {
		if truncated := math.Trunc(f); truncated != 0 {
			hours = truncated
		}
	}

	if hours < domain.MinDurationHours || hours > domain.MaxDurationHours {
		return 0, fmt.Errorf("%w: %q hours, allowed %d-%d",
			ErrInvalidDuration, raw, domain.MinDurationHours, domain.MaxDurationHours)
	}

	return int(hours), nil
}

// parseAge возвращает возраст, если это положительное число, иначе nil
func parseAge(raw string) *int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return nil
	}

	age := int(math.Trunc(f))
	return &age
}
