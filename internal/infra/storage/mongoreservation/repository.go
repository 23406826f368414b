// Package mongoreservation stores reservations as documents in MongoDB.
package mongoreservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	// CollectionName коллекция бронирований
	CollectionName = "reservas"

	activeSlotIndex = "uq_reservas_active_slot"
)

// Repository репозиторий бронирований в MongoDB
//
// Документ хранит флаг activo (estado != "cancelada"), по которому построен
// частичный уникальный индекс {fecha, horaInicio}
type Repository struct {
	collection *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes создает индексы коллекции (идемпотентно)
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "fecha", Value: 1}, {Key: "horaInicio", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "fecha", Value: 1}, {Key: "horaInicio", Value: 1}},
			Options: options.Index().
				SetName(activeSlotIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"activo": true}),
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("%w: EnsureIndexes - create indexes: %v", storage.ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет новое бронирование
// createdAt проставляет сервер MongoDB ($currentDate) в той же операции, что и вставка
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	id := uuid.NewString()

	update, err := insertUpdate(reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build document: %v", storage.ErrBuildQuery, err)
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"createdAt": 1})

	var stored struct {
		CreatedAt time.Time `bson:"createdAt"`
	}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&stored)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storage.ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - upsert document: %v", storage.ErrExecQuery, err)
	}

	createdAt := stored.CreatedAt.UTC()
	reservation.ID = id
	reservation.CreatedAt = &createdAt
	return reservation, nil
}

// insertUpdate строит upsert для нового документа
// _id берется из фильтра, createdAt выставляет сервер
func insertUpdate(reservation *domain.Reservation) (bson.M, error) {
	raw, err := bson.Marshal(toDocument(reservation))
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "_id")
	delete(fields, "createdAt")

	return bson.M{
		"$setOnInsert": fields,
		"$currentDate": bson.M{"createdAt": true},
	}, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var doc reservationDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode document: %v", storage.ErrScanRow, err)
	}

	return doc.toDomain(), nil
}

// FindBySlot получает все бронирования (включая отмененные) на дату и время начала
func (r *Repository) FindBySlot(ctx context.Context, date string, startTime string) ([]*domain.Reservation, error) {
	return r.find(ctx, "FindBySlot", bson.M{"fecha": date, "horaInicio": startTime}, nil)
}

// FindByDate получает все бронирования на дату, отсортированные по времени начала
func (r *Repository) FindByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "horaInicio", Value: 1}})
	return r.find(ctx, "FindByDate", bson.M{"fecha": date}, opts)
}

// List получает бронирования в диапазоне дат (границы включительно)
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}, {Key: "horaInicio", Value: 1}})
	return r.find(ctx, "List", listFilter(filter), opts)
}

// UpdateStatus перезаписывает статус бронирования и пересчитывает флаг activo
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	update := bson.M{"$set": bson.M{
		"estado": string(status),
		"activo": status.IsActive(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - update document: %v", storage.ErrExecQuery, err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete document: %v", storage.ErrExecQuery, err)
	}
	if result.DeletedCount == 0 {
		return storage.ErrReservationNotFound
	}

	return nil
}

func (r *Repository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]*domain.Reservation, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - find documents: %v", storage.ErrExecQuery, op, err)
	}
	defer cursor.Close(ctx)

	var docs []reservationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s - decode documents: %v", storage.ErrScanRow, op, err)
	}

	reservations := make([]*domain.Reservation, 0, len(docs))
	for i := range docs {
		reservations = append(reservations, docs[i].toDomain())
	}

	return reservations, nil
}

func listFilter(filter domain.ReservationFilter) bson.M {
	dateRange := bson.M{}
	if filter.From != "" {
		dateRange["$gte"] = filter.From
	}
	if filter.To != "" {
		dateRange["$lte"] = filter.To
	}

	if len(dateRange) == 0 {
		return bson.M{}
	}
	return bson.M{"fecha": dateRange}
}

type reservationDocument struct {
	ID            string    `bson:"_id"`
	Nombre        string    `bson:"nombre"`
	Edad          *int      `bson:"edad,omitempty"`
	Email         string    `bson:"email"`
	Telefono      string    `bson:"telefono"`
	Whatsapp      string    `bson:"whatsapp"`
	Comentario    string    `bson:"comentario"`
	Fecha         string    `bson:"fecha"`
	HoraInicio    string    `bson:"horaInicio"`
	DuracionHoras int       `bson:"duracionHoras"`
	PrecioTotal   int       `bson:"precioTotal"`
	Estado        string    `bson:"estado"`
	Activo        bool      `bson:"activo"`
	CreatedAt     time.Time `bson:"createdAt"`
}

func toDocument(r *domain.Reservation) reservationDocument {
	doc := reservationDocument{
		ID:            r.ID,
		Nombre:        r.Name,
		Edad:          r.Age,
		Email:         r.Email,
		Telefono:      r.Phone,
		Whatsapp:      r.WhatsApp,
		Comentario:    r.Comment,
		Fecha:         r.Date,
		HoraInicio:    r.StartTime.String(),
		DuracionHoras: r.DurationHours,
		PrecioTotal:   r.TotalPrice,
		Estado:        string(r.Status),
		Activo:        r.Status.IsActive(),
	}
	if r.CreatedAt != nil {
		doc.CreatedAt = *r.CreatedAt
	}
	return doc
}

func (d *reservationDocument) toDomain() *domain.Reservation {
	r := &domain.Reservation{
		ID:            d.ID,
		Name:          d.Nombre,
		Age:           d.Edad,
		Email:         d.Email,
		Phone:         d.Telefono,
		WhatsApp:      d.Whatsapp,
		Comment:       d.Comentario,
		Date:          d.Fecha,
		StartTime:     types.TimeString(d.HoraInicio),
		DurationHours: d.DuracionHoras,
		TotalPrice:    d.PrecioTotal,
		Status:        domain.ReservationStatus(d.Estado),
	}
	if !d.CreatedAt.IsZero() {
		createdAt := d.CreatedAt
		r.CreatedAt = &createdAt
	}
	return r
}
