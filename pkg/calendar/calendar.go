// Package calendar implements timezone-naive calendar date helpers.
//
// Dates travel as "YYYY-MM-DD" strings and are represented in memory as
// midnight UTC of the civil date, so arithmetic never crosses a DST edge.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for strings that are not a valid YYYY-MM-DD date
var ErrInvalidDate = errors.New("calendar: invalid date")

var dayNames = [...]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
}

var monthNames = [...]string{
	"enero",
	"febrero",
	"marzo",
	"abril",
	"mayo",
	"junio",
	"julio",
	"agosto",
	"septiembre",
	"octubre",
	"noviembre",
	"diciembre",
}

// ParseDate parses "YYYY-MM-DD" into a civil date.
// Every part must be numeric and the day must exist in that month.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if !isDigits(p) {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 1), reject it instead
	if d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return d, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatDate renders the civil date of d as "YYYY-MM-DD"
func FormatDate(d time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// DayOfWeek returns 0 for Sunday through 6 for Saturday
func DayOfWeek(d time.Time) int {
	return int(d.Weekday())
}

func IsWeekend(d time.Time) bool {
	dow := DayOfWeek(d)
	return dow == 0 || dow == 6
}

// HumanLabel formats a "YYYY-MM-DD" string as "Lunes · 10 de junio 2024".
// Empty or malformed input yields "".
func HumanLabel(fecha string) string {
	if fecha == "" {
		return ""
	}
	d, err := ParseDate(fecha)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s · %d de %s %d", dayNames[DayOfWeek(d)], d.Day(), monthNames[d.Month()-1], d.Year())
}

// Today returns the civil date of now in now's own location
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(d time.Time, days int) time.Time {
	return d.AddDate(0, 0, days)
}
