package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const selectColumns = "SELECT id, nombre, edad, email, telefono, whatsapp, comentario, fecha, hora_inicio, duracion_horas, precio_total, estado, created_at FROM reservations"

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.ReservationFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "no bounds",
			filter:   domain.ReservationFilter{},
			wantSQL:  selectColumns + " ORDER BY fecha ASC, hora_inicio ASC",
			wantArgs: nil,
		},
		{
			name:     "from only",
			filter:   domain.ReservationFilter{From: "2024-06-01"},
			wantSQL:  selectColumns + " WHERE fecha >= $1 ORDER BY fecha ASC, hora_inicio ASC",
			wantArgs: []interface{}{"2024-06-01"},
		},
		{
			name:     "to only",
			filter:   domain.ReservationFilter{To: "2024-06-30"},
			wantSQL:  selectColumns + " WHERE fecha <= $1 ORDER BY fecha ASC, hora_inicio ASC",
			wantArgs: []interface{}{"2024-06-30"},
		},
		{
			name:     "both bounds",
			filter:   domain.ReservationFilter{From: "2024-06-01", To: "2024-06-30"},
			wantSQL:  selectColumns + " WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha ASC, hora_inicio ASC",
			wantArgs: []interface{}{"2024-06-01", "2024-06-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildInsertQuery(t *testing.T) {
	reservation := &domain.Reservation{
		Name:          "Ana",
		Age:           ptr.Ptr(30),
		Email:         "ana@example.com",
		Phone:         "+507 6000-0000",
		WhatsApp:      "+507 6000-0000",
		Date:          "2024-06-10",
		StartTime:     "10:00",
		DurationHours: 2,
		TotalPrice:    120,
		Status:        domain.StatusPending,
	}

	query, args, err := buildInsertQuery("8f14e45f-ceea-467f-a0e6-4b1c2d3e4f50", reservation)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO reservations (id,nombre,edad,email,telefono,whatsapp,comentario,fecha,hora_inicio,duracion_horas,precio_total,estado) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING created_at",
		query,
	)
	require.Len(t, args, 12)
	assert.Equal(t, "8f14e45f-ceea-467f-a0e6-4b1c2d3e4f50", args[0])
	assert.Equal(t, 120, args[10])
	assert.Equal(t, domain.StatusPending, args[11])
}

func TestIsActiveSlotViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "active slot index",
			err:  &pq.Error{Code: "23505", Constraint: "uq_reservations_active_slot"},
			want: true,
		},
		{
			name: "wrapped",
			err:  errors.Join(errors.New("insert"), &pq.Error{Code: "23505", Constraint: "uq_reservations_active_slot"}),
			want: true,
		},
		{
			name: "other unique constraint",
			err:  &pq.Error{Code: "23505", Constraint: "reservations_pkey"},
			want: false,
		},
		{
			name: "other error code",
			err:  &pq.Error{Code: "23502", Constraint: "uq_reservations_active_slot"},
			want: false,
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isActiveSlotViolation(tt.err))
		})
	}
}

func TestRepository_InvalidIDIsNotFound(t *testing.T) {
	// Невалидный UUID отсекается до обращения к БД
	repo := NewRepository(nil)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, storage.ErrReservationNotFound)

	err = repo.UpdateStatus(ctx, "not-a-uuid", domain.StatusCancelled)
	assert.ErrorIs(t, err, storage.ErrReservationNotFound)

	err = repo.Delete(ctx, "")
	assert.ErrorIs(t, err, storage.ErrReservationNotFound)
}
