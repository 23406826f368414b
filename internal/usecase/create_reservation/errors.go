package create_reservation

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_reservation: missing required fields")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrWeekendNotBookable возвращается для субботы и воскресенья (запись только через WhatsApp)
	ErrWeekendNotBookable = errors.New("create_reservation: weekend reservations are handled manually")

	// ErrInvalidStartTime возвращается, когда время начала не "HH:00" в диапазоне 08:00-19:00
	ErrInvalidStartTime = errors.New("create_reservation: invalid start time")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона 1-3 часа
	ErrInvalidDuration = errors.New("create_reservation: invalid duration")

	// ErrSlotNotAvailable возвращается, когда на слот уже есть активное бронирование
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
