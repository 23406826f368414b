package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// validateRequest валидирует входные данные запроса и возвращает дату
func validateRequest(req *Request) (time.Time, error) {
	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: fecha is required", ErrInvalidDate)
	}

	date, err := calendar.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return date, nil
}
