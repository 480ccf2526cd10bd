package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	eventRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/event"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ResortService/internal/service/events/models"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

// Service сервис мероприятий и записи на них
type Service struct {
	repo         EventRepository
	notifier     Notifier
	metrics      MetricsRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса мероприятий
func NewService(
	repo EventRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListUpcoming публичный список: опубликованные мероприятия, которые ещё не начались
func (s *Service) ListUpcoming(ctx context.Context) ([]models.EventResponse, error) {
	now := s.timeProvider.Now()
	events, err := s.repo.List(ctx, true, &now)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEvents(events), nil
}

// ListAll все мероприятия (админка)
func (s *Service) ListAll(ctx context.Context) ([]models.EventResponse, error) {
	events, err := s.repo.List(ctx, false, nil)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEvents(events), nil
}

// GetByID мероприятие с количеством свободных мест
// Неопубликованное видно только при includeUnpublished
func (s *Service) GetByID(ctx context.Context, id int64, includeUnpublished bool) (*models.EventResponse, error) {
	event, err := s.getEvent(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished && !includeUnpublished {
		return nil, ErrEventNotFound
	}

	resp := models.FromDomainEvent(event)
	if !event.IsUnlimited() {
		reserved, err := s.repo.ReservedSeats(ctx, id)
		if err != nil {
			s.logger.Error("GetByID: failed to count seats for event id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: GetByID - reserved seats: %v", ErrInternal, err)
		}
		left := event.SeatsLeft(reserved)
		resp.SeatsLeft = &left
	}

	return &resp, nil
}

// Reserve записывает гостя на мероприятие
// Проверка мест и вставка выполняются в сериализуемой транзакции со строкой мероприятия под блокировкой
func (s *Service) Reserve(ctx context.Context, eventID int64, req *models.ReserveRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Reserve: event id=%d, seats=%d", eventID, req.Seats)

	// 1. Валидация
	if req.Seats < 1 || req.Seats > domain.MaxEventSeats {
		return nil, fmt.Errorf("%w: seats must be in 1..%d", ErrInvalidInput, domain.MaxEventSeats)
	}
	if err := domain.ValidateContact(req.Name, req.Email, req.Phone, false); err != nil {
		s.logger.Warn("Reserve: invalid contact: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.EventReservation

	// 2. Проверка мест и запись
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		event, err := s.getEvent(txCtx, "Reserve", eventID)
		if err != nil {
			return err
		}
		if !event.IsPublished {
			return ErrEventNotFound
		}
		if event.HasStarted(s.timeProvider.Now()) {
			s.logger.Warn("Reserve: event id=%d has already started", eventID)
			return ErrEventStarted
		}

		if !event.IsUnlimited() {
			reserved, err := s.repo.ReservedSeats(txCtx, eventID)
			if err != nil {
				s.logger.Error("Reserve: failed to count seats for event id=%d: %v", eventID, err)
				return fmt.Errorf("%w: Reserve - reserved seats: %v", ErrInternal, err)
			}
			if left := event.SeatsLeft(reserved); req.Seats > left {
				s.logger.Warn("Reserve: event id=%d has %d seats left, requested %d", eventID, left, req.Seats)
				return ErrNotEnoughSeats
			}
		}

		created, err = s.repo.CreateReservation(txCtx, &domain.EventReservation{
			EventID: eventID,
			UserID:  req.UserID,
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Phone:   strings.TrimSpace(req.Phone),
			Seats:   req.Seats,
			Status:  domain.EventReservationPending,
		})
		if err != nil {
			s.logger.Error("Reserve: failed to create reservation: %v", err)
			return fmt.Errorf("%w: Reserve - create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("Reserve: serialization conflict for event id=%d: %v", eventID, err)
			return nil, fmt.Errorf("%w: %v", ErrNotEnoughSeats, err)
		}
		return nil, err
	}

	s.metrics.ReservationCreated(notifier.KindEvent)
	if err := s.notifier.ReservationCreated(ctx, notifier.ReservationPayload{
		Kind:          notifier.KindEvent,
		ReservationID: created.ID,
		TargetID:      eventID,
		Name:          created.Name,
		Contact:       created.Email,
	}); err != nil {
		s.logger.Warn("Reserve: failed to publish reservation id=%d: %v", created.ID, err)
	}

	s.logger.Info("Reserve: created reservation id=%d for event id=%d", created.ID, eventID)
	resp := models.FromDomainReservation(created)
	return &resp, nil
}

// Create создает мероприятие (админка)
func (s *Service) Create(ctx context.Context, req *models.EventRequest) (*models.EventResponse, error) {
	event := req.ToDomain()
	if err := validateEvent(event); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created event id=%d", created.ID)
	resp := models.FromDomainEvent(created)
	return &resp, nil
}

// Update обновляет мероприятие (админка)
func (s *Service) Update(ctx context.Context, id int64, req *models.EventRequest) (*models.EventResponse, error) {
	event := req.ToDomain()
	event.ID = id
	if err := validateEvent(event); err != nil {
		s.logger.Warn("Update: validation failed for event id=%d: %v", id, err)
		return nil, err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated event id=%d", id)
	resp := models.FromDomainEvent(event)
	return &resp, nil
}

// Delete удаляет мероприятие вместе с записями (админка)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted event id=%d", id)
	return nil
}

// ListReservations записи на мероприятие (админка)
func (s *Service) ListReservations(ctx context.Context, eventID int64) ([]models.ReservationResponse, error) {
	if _, err := s.getEvent(ctx, "ListReservations", eventID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListReservations(ctx, eventID)
	if err != nil {
		s.logger.Error("ListReservations: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservations(list), nil
}

// UpdateReservationStatus меняет статус записи (админка)
func (s *Service) UpdateReservationStatus(ctx context.Context, id int64, req *models.UpdateReservationStatusRequest) error {
	status := domain.EventReservationStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateReservationStatus(ctx, id, status); err != nil {
		if errors.Is(err, eventRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateReservationStatus: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateReservationStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateReservationStatus: reservation id=%d -> %s", id, status)
	return nil
}

func (s *Service) getEvent(ctx context.Context, op string, id int64) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("%s: event id=%d not found", op, id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("%s: repository error for event id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return event, nil
}

func validateEvent(e *domain.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if e.StartsAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if e.EndsAt != nil && !e.EndsAt.After(e.StartsAt) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	if e.Price < 0 || e.Capacity < 0 {
		return fmt.Errorf("%w: price and capacity must not be negative", ErrInvalidInput)
	}
	return nil
}
