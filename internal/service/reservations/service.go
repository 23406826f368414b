package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/calendar"
)

// Service сервис для работы с бронированиями из внутренней агенды
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty reservation id", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования за период
//
// Примеры использования:
// - Все бронирования: List(ctx, &ListRequest{})
// - Начиная с даты: указать только From
// - До даты включительно: указать только To
// - За период: From и To (границы включительно)
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{
		From: strings.TrimSpace(req.From),
		To:   strings.TrimSpace(req.To),
	}

	// Границы должны быть корректными датами, иначе строковое сравнение даст неверный диапазон
	for _, bound := range []string{filter.From, filter.To} {
		if bound == "" {
			continue
		}
		if _, err := calendar.ParseDate(bound); err != nil {
			s.logger.Warn("List: invalid date bound %q", bound)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, bound)
		}
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for range [%s, %s]: %v", filter.From, filter.To, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for range [%s, %s]", len(reservations), filter.From, filter.To)
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus перезаписывает статус бронирования
// Переходы между статусами не проверяются
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty reservation id", ErrInvalidInput)
	}

	status := domain.ReservationStatus(strings.TrimSpace(req.Estado))
	if status == "" {
		return nil, fmt.Errorf("%w: empty status", ErrInvalidInput)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, storage.ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, storage.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: reservation id=%s cannot become %s, slot is taken", id, status)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: reservation id=%s set to status=%s", id, status)
	return &models.StatusResponse{ID: id, Estado: string(status)}, nil
}

// Cancel отменяет бронирование (идемпотентно)
func (s *Service) Cancel(ctx context.Context, id string) (*models.StatusResponse, error) {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Estado: string(domain.StatusCancelled)})
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty reservation id", ErrInvalidInput)
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}
