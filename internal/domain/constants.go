package domain

// Pricing
const (
	// HourlyRate price of one consulting hour, USD
	HourlyRate = 60
)

// Business validation constants
const (
	MinDurationHours     = 1
	MaxDurationHours     = 3
	DefaultDurationHours = 1

	// FirstStartHour and LastStartHour bound the start times offered on the form (08:00 to 19:00)
	FirstStartHour = 8
	LastStartHour  = 19
)

// Agenda defaults
const (
	DefaultAgendaUpcomingDays  = 7
	DefaultAgendaLookaheadDays = 30
)

// TotalPrice returns the price of a reservation of the given length
func TotalPrice(durationHours int) int {
	return HourlyRate * durationHours
}
