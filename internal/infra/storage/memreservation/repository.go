// Package memreservation keeps reservations in process memory.
// Used for local runs and as the store behind service and handler tests.
package memreservation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
)

// Repository потокобезопасное хранилище бронирований в памяти
type Repository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
	now          func() time.Time
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		reservations: make(map[string]*domain.Reservation),
		now:          time.Now,
	}
}

// Create сохраняет новое бронирование
// Проверка активного бронирования на слот выполняется под той же блокировкой, что и вставка
func (r *Repository) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reservation.Status.IsActive() && r.slotTakenLocked(reservation.Date, reservation.StartTime.String(), "") {
		return nil, storage.ErrSlotTaken
	}

	createdAt := r.now().UTC()
	reservation.ID = uuid.NewString()
	reservation.CreatedAt = &createdAt

	r.reservations[reservation.ID] = clone(reservation)
	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	return clone(reservation), nil
}

// FindBySlot получает все бронирования (включая отмененные) на дату и время начала
func (r *Repository) FindBySlot(_ context.Context, date string, startTime string) ([]*domain.Reservation, error) {
	return r.collect(func(res *domain.Reservation) bool {
		return res.Date == date && res.StartTime.String() == startTime
	}), nil
}

// FindByDate получает все бронирования на дату, отсортированные по времени начала
func (r *Repository) FindByDate(_ context.Context, date string) ([]*domain.Reservation, error) {
	return r.collect(func(res *domain.Reservation) bool {
		return res.Date == date
	}), nil
}

// List получает бронирования в диапазоне дат (границы включительно)
func (r *Repository) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return r.collect(func(res *domain.Reservation) bool {
		return filter.Matches(res.Date)
	}), nil
}

// UpdateStatus перезаписывает статус бронирования
func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, ok := r.reservations[id]
	if !ok {
		return storage.ErrReservationNotFound
	}

	if status.IsActive() && !reservation.IsActive() &&
		r.slotTakenLocked(reservation.Date, reservation.StartTime.String(), id) {
		return storage.ErrSlotTaken
	}

	reservation.Status = status
	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reservations[id]; !ok {
		return storage.ErrReservationNotFound
	}
	delete(r.reservations, id)
	return nil
}

func (r *Repository) slotTakenLocked(date, startTime, exceptID string) bool {
	for id, res := range r.reservations {
		if id == exceptID {
			continue
		}
		if res.Date == date && res.StartTime.String() == startTime && res.IsActive() {
			return true
		}
	}
	return false
}

func (r *Repository) collect(match func(*domain.Reservation) bool) []*domain.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if match(res) {
			result = append(result, clone(res))
		}
	}

	domain.SortReservations(result)
	return result
}

func clone(r *domain.Reservation) *domain.Reservation {
	c := *r
	if r.Age != nil {
		age := *r.Age
		c.Age = &age
	}
	if r.CreatedAt != nil {
		createdAt := *r.CreatedAt
		c.CreatedAt = &createdAt
	}
	return &c
}
