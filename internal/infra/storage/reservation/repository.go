package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const (
	tableName = "reservations"

	// activeSlotIndex частичный уникальный индекс (fecha, hora_inicio) WHERE estado <> 'cancelada'
	activeSlotIndex = "uq_reservations_active_slot"

	uniqueViolation = pq.ErrorCode("23505")
)

var columns = []string{
	"id",
	"nombre",
	"edad",
	"email",
	"telefono",
	"whatsapp",
	"comentario",
	"fecha",
	"hora_inicio",
	"duracion_horas",
	"precio_total",
	"estado",
	"created_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// ID генерируется здесь, created_at проставляет БД (DEFAULT NOW())
// Если на слот уже есть активное бронирование, уникальный индекс вернет ошибку -> storage.ErrSlotTaken
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	id := uuid.NewString()

	query, args, err := buildInsertQuery(id, reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isActiveSlotViolation(err) {
			return nil, storage.ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	reservation.ID = id
	if createdAt.Valid {
		t := createdAt.Time
		reservation.CreatedAt = &t
	}

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		// Колонка id типа UUID: невалидный id не может существовать
		return nil, storage.ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	reservation, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", storage.ErrScanRow, err)
	}

	return reservation, nil
}

// FindBySlot получает все бронирования (включая отмененные) на дату и время начала
func (r *Repository) FindBySlot(ctx context.Context, date string, startTime string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"fecha": date, "hora_inicio": startTime}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBySlot - build select query: %v", storage.ErrBuildQuery, err)
	}

	return r.query(ctx, "FindBySlot", query, args)
}

// FindByDate получает все бронирования на дату, отсортированные по времени начала
func (r *Repository) FindByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"fecha": date}).
		OrderBy("hora_inicio ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - build select query: %v", storage.ErrBuildQuery, err)
	}

	return r.query(ctx, "FindByDate", query, args)
}

// List получает бронирования в диапазоне дат
//
// Примеры:
//
// 1. Все бронирования:
//    filter := domain.ReservationFilter{}
//
// 2. Начиная с даты:
//    filter := domain.ReservationFilter{From: "2024-06-01"}
//
// 3. За период (границы включительно):
//    filter := domain.ReservationFilter{From: "2024-06-01", To: "2024-06-30"}
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", storage.ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// UpdateStatus перезаписывает статус бронирования без проверки переходов
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Update(tableName).
		Set("estado", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", storage.ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// Повторная активация отмененного бронирования на занятый слот
		if isActiveSlotViolation(err) {
			return storage.ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", storage.ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// Delete удаляет бронирование (физическое удаление)
// Основной сценарий использует отмену через UpdateStatus
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", storage.ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func (r *Repository) query(ctx context.Context, op string, query string, args []interface{}) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", storage.ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", storage.ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", storage.ErrScanRow, op, err)
	}

	return reservations, nil
}

func buildInsertQuery(id string, reservation *domain.Reservation) (string, []interface{}, error) {
	var age sql.NullInt64
	if reservation.Age != nil {
		age = sql.NullInt64{Int64: int64(*reservation.Age), Valid: true}
	}

	return psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"nombre",
			"edad",
			"email",
			"telefono",
			"whatsapp",
			"comentario",
			"fecha",
			"hora_inicio",
			"duracion_horas",
			"precio_total",
			"estado",
		).
		Values(
			id,
			reservation.Name,
			age,
			reservation.Email,
			reservation.Phone,
			reservation.WhatsApp,
			reservation.Comment,
			reservation.Date,
			reservation.StartTime,
			reservation.DurationHours,
			reservation.TotalPrice,
			reservation.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildListQuery(filter domain.ReservationFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.From != "" {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"fecha": filter.From})
	}
	if filter.To != "" {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"fecha": filter.To})
	}

	return selectBuilder.OrderBy("fecha ASC", "hora_inicio ASC").ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation domain.Reservation
		age         sql.NullInt64
		status      string
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.Name,
		&age,
		&reservation.Email,
		&reservation.Phone,
		&reservation.WhatsApp,
		&reservation.Comment,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.DurationHours,
		&reservation.TotalPrice,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		reservation.Age = &v
	}
	reservation.Status = domain.ReservationStatus(status)
	if createdAt.Valid {
		t := createdAt.Time
		reservation.CreatedAt = &t
	}

	return &reservation, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", storage.ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return storage.ErrReservationNotFound
	}
	return nil
}

func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && pqErr.Constraint == activeSlotIndex
}
