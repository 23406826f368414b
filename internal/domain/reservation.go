package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pendiente"
	StatusConfirmed ReservationStatus = "confirmada"
	StatusCompleted ReservationStatus = "realizada"
	StatusCancelled ReservationStatus = "cancelada"
)

// IsActive reports whether a reservation with this status occupies its slot.
// Only the exact "cancelada" value frees a slot.
func (s ReservationStatus) IsActive() bool {
	return s != StatusCancelled
}

// Normalize maps a stored status onto a known one for display.
// Empty and unknown values read as pending.
func (s ReservationStatus) Normalize() ReservationStatus {
	switch ReservationStatus(strings.ToLower(strings.TrimSpace(string(s)))) {
	case StatusConfirmed:
		return StatusConfirmed
	case StatusCompleted:
		return StatusCompleted
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Label returns the badge text shown to staff
func (s ReservationStatus) Label() string {
	switch s.Normalize() {
	case StatusConfirmed:
		return "Confirmada"
	case StatusCompleted:
		return "Realizada"
	case StatusCancelled:
		return "Cancelada"
	default:
		return "Pendiente"
	}
}

// Reservation represents a booked consulting slot
type Reservation struct {
	ID            string
	Name          string
	Age           *int
	Email         string
	Phone         string
	WhatsApp      string
	Comment       string
	Date          string // "2024-06-10", calendar date without zone
	StartTime     types.TimeString
	DurationHours int
	TotalPrice    int
	Status        ReservationStatus
	CreatedAt     *time.Time // nil until persisted
}

// IsActive returns true if the reservation still blocks its slot
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// IsCancelled returns true if the reservation has been cancelled (display semantics)
func (r *Reservation) IsCancelled() bool {
	return r.Status.Normalize() == StatusCancelled
}

// ReservationFilter date range filter, both bounds inclusive and optional ("" = unbounded)
type ReservationFilter struct {
	From string
	To   string
}

// Matches reports whether a date falls into the filter range
func (f ReservationFilter) Matches(date string) bool {
	if f.From != "" && date < f.From {
		return false
	}
	if f.To != "" && date > f.To {
		return false
	}
	return true
}

// SortReservations orders reservations by date, then start time, ascending.
// ISO dates and zero-padded times sort correctly as strings.
func SortReservations(reservations []*Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.StartTime < b.StartTime
	})
}
