// Package storage holds the errors shared by every reservation store backend.
package storage

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("storage: reservation not found")

	// ErrSlotTaken возвращается, когда на дату и время уже есть активное бронирование
	// (срабатывает условный уникальный индекс хранилища)
	ErrSlotTaken = errors.New("storage: slot already has an active reservation")

	// ErrBuildQuery возвращается при ошибке построения запроса
	ErrBuildQuery = errors.New("storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата запроса
	ErrScanRow = errors.New("storage: failed to scan row")
)
