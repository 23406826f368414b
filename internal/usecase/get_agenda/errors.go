package get_agenda

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной выбранной дате
	ErrInvalidDate = errors.New("get_agenda: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_agenda: internal error")
)
