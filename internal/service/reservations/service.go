package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/table_reservation"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ResortService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ResortService/pkg/ptr"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

// Service сервис брони столиков в ресторане
type Service struct {
	repo         TableReservationRepository
	notifier     Notifier
	metrics      MetricsRecorder
	txManager    TransactionManager
	seatsPerDay  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса брони столиков
// seatsPerDay - лимит гостей на дату, 0 отключает проверку
func NewService(
	repo TableReservationRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	seatsPerDay int,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		seatsPerDay:  seatsPerDay,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает бронь столика
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Create: table reservation date=%s time=%s guests=%d", req.Date, req.Time, req.Guests)

	// 1. Валидация
	date, at, err := req.Parse()
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if date.Before(domain.DateOnly(s.timeProvider.Now())) {
		s.logger.Warn("Create: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}
	if req.Guests < domain.MinGuests || req.Guests > domain.MaxTableGuests {
		return nil, fmt.Errorf("%w: guests must be in %d..%d", ErrInvalidInput, domain.MinGuests, domain.MaxTableGuests)
	}
	if err := domain.ValidateContact(req.Name, ptr.Value(req.Email), req.Phone, true); err != nil {
		s.logger.Warn("Create: invalid contact: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: comment must be at most %d chars", ErrInvalidInput, domain.MaxNotesLength)
	}

	var created *domain.TableReservation

	// 2. Проверка лимита мест на дату и вставка
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if s.seatsPerDay > 0 {
			taken, err := s.repo.GuestsAt(txCtx, date)
			if err != nil {
				s.logger.Error("Create: failed to count guests for %s: %v", req.Date, err)
				return fmt.Errorf("%w: Create - guests at: %v", ErrInternal, err)
			}
			if taken+req.Guests > s.seatsPerDay {
				s.logger.Warn("Create: %s fully booked (%d of %d taken, requested %d)",
					req.Date, taken, s.seatsPerDay, req.Guests)
				return ErrFullyBooked
			}
		}

		created, err = s.repo.Create(txCtx, &domain.TableReservation{
			UserID:  req.UserID,
			Date:    date,
			Time:    at,
			Guests:  req.Guests,
			Name:    strings.TrimSpace(req.Name),
			Phone:   strings.TrimSpace(req.Phone),
			Email:   req.Email,
			Comment: req.Comment,
			Status:  domain.TableReservationPending,
		})
		if err != nil {
			s.logger.Error("Create: failed to create reservation: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("Create: serialization conflict for %s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrFullyBooked, err)
		}
		return nil, err
	}

	s.metrics.ReservationCreated(notifier.KindTable)
	if err := s.notifier.ReservationCreated(ctx, notifier.ReservationPayload{
		Kind:          notifier.KindTable,
		ReservationID: created.ID,
		Name:          created.Name,
		Contact:       created.Phone,
	}); err != nil {
		s.logger.Warn("Create: failed to publish reservation id=%d: %v", created.ID, err)
	}

	s.logger.Info("Create: created table reservation id=%d", created.ID)
	resp := models.FromDomainReservation(created)
	return &resp, nil
}

// List список броней (админка)
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReservations(list), nil
}

// GetByID бронь по ID (админка)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	resp := models.FromDomainReservation(res)
	return &resp, nil
}

// UpdateStatus меняет статус брони (админка)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	status := domain.TableReservationStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, tableRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: table reservation id=%d -> %s", id, status)
	return nil
}

// Delete удаляет бронь (админка)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted table reservation id=%d", id)
	return nil
}
