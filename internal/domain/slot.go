package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// AvailableSlot represents one bookable start hour of a day
type AvailableSlot struct {
	StartTime types.TimeString
	Taken     bool // an active reservation already starts at this hour
}

// IsFree returns true if the slot can still be booked
func (s *AvailableSlot) IsFree() bool {
	return !s.Taken
}
