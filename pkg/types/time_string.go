package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time of day
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a time of day in "HH:MM" 24-hour format, without date or zone
type TimeString string

// NewTimeString returns the time of day of t truncated to minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromHour returns "HH:00" for the given hour
func NewTimeStringFromHour(hour int) (TimeString, error) {
	ts := TimeString(fmt.Sprintf("%02d:00", hour))
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromString parses and validates s
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" layout and ranges
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour part, or -1 for an invalid value
func (t TimeString) Hour() int {
	m, err := t.minutes()
	if err != nil {
		return -1
	}
	return m / 60
}

// Minute returns the minute part, or -1 for an invalid value
func (t TimeString) Minute() int {
	m, err := t.minutes()
	if err != nil {
		return -1
	}
	return m % 60
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as strings.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return t < other
	}
	return a < b
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

func (t TimeString) minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeString
	}
	// strconv.Atoi пропускает знак, поэтому цифры проверяем явно
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeString
		}
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidTimeString
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidTimeString
	}
	return h*60 + m, nil
}
