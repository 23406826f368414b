package reservations

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memreservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type failingRepo struct {
	err error
}

func (f *failingRepo) GetByID(context.Context, string) (*domain.Reservation, error) {
	return nil, f.err
}

func (f *failingRepo) List(context.Context, domain.ReservationFilter) ([]*domain.Reservation, error) {
	return nil, f.err
}

func (f *failingRepo) UpdateStatus(context.Context, string, domain.ReservationStatus) error {
	return f.err
}

func (f *failingRepo) Delete(context.Context, string) error {
	return f.err
}

func newTestService(t *testing.T) (*Service, *memreservation.Repository) {
	t.Helper()
	repo := memreservation.NewRepository()
	return NewService(repo, logger.NewWithWriter(io.Discard, logger.LevelError)), repo
}

func seed(t *testing.T, repo *memreservation.Repository, date string, start types.TimeString) *domain.Reservation {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Reservation{
		Name:          "Ana",
		Email:         "ana@example.com",
		Phone:         "+507 6000-0000",
		WhatsApp:      "+507 6000-0000",
		Date:          date,
		StartTime:     start,
		DurationHours: 1,
		TotalPrice:    60,
		Status:        domain.StatusPending,
	})
	require.NoError(t, err)
	return created
}

func TestService_GetByID(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := seed(t, repo, "2024-06-10", "10:00")

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Lunes · 10 de junio 2024", got.FechaLabel)
	assert.Equal(t, "Pendiente", got.EstadoLabel)
	assert.True(t, got.Cancelable)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seed(t, repo, "2024-06-12", "09:00")
	seed(t, repo, "2024-06-10", "11:00")
	seed(t, repo, "2024-06-10", "08:00")
	seed(t, repo, "2024-07-01", "08:00")

	tests := []struct {
		name    string
		req     *models.ListRequest
		want    []string
		wantErr error
	}{
		{
			name: "all ordered by date and time",
			req:  &models.ListRequest{},
			want: []string{"2024-06-10 08:00", "2024-06-10 11:00", "2024-06-12 09:00", "2024-07-01 08:00"},
		},
		{
			name: "inclusive range",
			req:  &models.ListRequest{From: "2024-06-10", To: "2024-06-12"},
			want: []string{"2024-06-10 08:00", "2024-06-10 11:00", "2024-06-12 09:00"},
		},
		{
			name: "from only",
			req:  &models.ListRequest{From: "2024-06-11"},
			want: []string{"2024-06-12 09:00", "2024-07-01 08:00"},
		},
		{
			name: "inverted range is empty",
			req:  &models.ListRequest{From: "2024-06-30", To: "2024-06-01"},
			want: []string{},
		},
		{
			name:    "malformed bound",
			req:     &models.ListRequest{From: "2024-13-01"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got := make([]string, 0, len(resp.Reservations))
			for _, r := range resp.Reservations {
				got = append(got, r.Fecha+" "+r.HoraInicio)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := seed(t, repo, "2024-06-10", "10:00")

	resp, err := svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Estado: "confirmada"})
	require.NoError(t, err)
	assert.Equal(t, "confirmada", resp.Estado)

	// Переходы не проверяются
	_, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Estado: "realizada"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Estado: "pendiente"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "missing", &models.UpdateStatusRequest{Estado: "confirmada"})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.UpdateStatus(ctx, created.ID, &models.UpdateStatusRequest{Estado: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CancelIsIdempotentAndFreesSlot(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	first := seed(t, repo, "2024-06-10", "10:00")

	for i := 0; i < 2; i++ {
		resp, err := svc.Cancel(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelada", resp.Estado)
	}

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelada", got.EstadoLabel)
	assert.False(t, got.Cancelable)

	// Слот свободен для новой записи, а отмененную нельзя вернуть поверх нее
	seed(t, repo, "2024-06-10", "10:00")
	_, err = svc.UpdateStatus(ctx, first.ID, &models.UpdateStatusRequest{Estado: "pendiente"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = svc.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	created := seed(t, repo, "2024-06-10", "10:00")

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrReservationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidInput)
}

func TestService_RepositoryFailureIsInternal(t *testing.T) {
	repoErr := errors.Join(storage.ErrExecQuery, errors.New("connection reset"))
	svc := NewService(&failingRepo{err: repoErr}, logger.NewWithWriter(io.Discard, logger.LevelError))
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "id")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.List(ctx, &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Cancel(ctx, "id")
	assert.ErrorIs(t, err, ErrInternal)

	assert.ErrorIs(t, svc.Delete(ctx, "id"), ErrInternal)
}
