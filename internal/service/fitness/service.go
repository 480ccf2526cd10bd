package fitness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	fitnessRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/fitness"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ResortService/internal/service/fitness/models"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

// Service сервис фитнес-центра: групповые курсы и абонементы
type Service struct {
	repo         FitnessRepository
	notifier     Notifier
	metrics      MetricsRecorder
	txManager    TransactionManager
	prices       map[domain.MembershipPlan]float64
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса фитнес-центра
// prices - стоимость абонемента по тарифу
func NewService(
	repo FitnessRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	prices map[domain.MembershipPlan]float64,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		prices:       prices,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListCourses список курсов
func (s *Service) ListCourses(ctx context.Context, onlyActive bool) ([]models.CourseResponse, error) {
	courses, err := s.repo.ListCourses(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListCourses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourses - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourses(courses), nil
}

// GetCourse курс по ID. Закрытый курс виден только при includeInactive
func (s *Service) GetCourse(ctx context.Context, id int64, includeInactive bool) (*models.CourseResponse, error) {
	course, err := s.getCourse(ctx, "GetCourse", id)
	if err != nil {
		return nil, err
	}
	if !course.IsActive && !includeInactive {
		return nil, ErrCourseNotFound
	}

	resp := models.FromDomainCourse(course)
	return &resp, nil
}

// Register записывает гостя на курс
// Подсчет мест и вставка выполняются в сериализуемой транзакции со строкой курса под блокировкой
func (s *Service) Register(ctx context.Context, courseID int64, req *models.RegisterRequest) (*models.RegistrationResponse, error) {
	s.logger.Info("Register: course id=%d", courseID)

	// 1. Валидация контактов
	if err := domain.ValidateContact(req.Name, req.Email, req.Phone, false); err != nil {
		s.logger.Warn("Register: invalid contact: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.FitnessCourseRegistration

	// 2. Проверка мест и запись
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		course, err := s.getCourse(txCtx, "Register", courseID)
		if err != nil {
			return err
		}
		if !course.IsActive {
			s.logger.Warn("Register: course id=%d is not active", courseID)
			return ErrCourseInactive
		}

		if course.Capacity > 0 {
			active, err := s.repo.CountActiveRegistrations(txCtx, courseID)
			if err != nil {
				s.logger.Error("Register: failed to count registrations for course id=%d: %v", courseID, err)
				return fmt.Errorf("%w: Register - count registrations: %v", ErrInternal, err)
			}
			if active >= course.Capacity {
				s.logger.Warn("Register: course id=%d is full (%d/%d)", courseID, active, course.Capacity)
				return ErrCourseFull
			}
		}

		created, err = s.repo.CreateRegistration(txCtx, &domain.FitnessCourseRegistration{
			CourseID: courseID,
			UserID:   req.UserID,
			Name:     strings.TrimSpace(req.Name),
			Email:    strings.TrimSpace(req.Email),
			Phone:    strings.TrimSpace(req.Phone),
			Status:   domain.RegistrationActive,
		})
		if err != nil {
			s.logger.Error("Register: failed to create registration: %v", err)
			return fmt.Errorf("%w: Register - create registration: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			s.logger.Warn("Register: serialization conflict for course id=%d: %v", courseID, err)
			return nil, fmt.Errorf("%w: %v", ErrCourseFull, err)
		}
		return nil, err
	}

	s.publish(ctx, "Register", notifier.KindCourse, created.ID, courseID, created.Name, created.Email)

	s.logger.Info("Register: created registration id=%d for course id=%d", created.ID, courseID)
	resp := models.FromDomainRegistration(created)
	return &resp, nil
}

// CreateMembership оформляет абонемент
// Дата окончания считается по тарифу, цена берется из конфигурации
func (s *Service) CreateMembership(ctx context.Context, req *models.MembershipRequest) (*models.MembershipResponse, error) {
	// 1. Валидация
	plan := domain.MembershipPlan(req.Plan)
	if !plan.Valid() {
		return nil, fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, req.Plan)
	}
	if err := domain.ValidateContact(req.Name, req.Email, req.Phone, false); err != nil {
		s.logger.Warn("CreateMembership: invalid contact: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, req.StartDate)
	}
	if start.Before(domain.DateOnly(s.timeProvider.Now())) {
		s.logger.Warn("CreateMembership: start date %s is in the past", req.StartDate)
		return nil, ErrStartDateInPast
	}

	price, ok := s.prices[plan]
	if !ok {
		s.logger.Error("CreateMembership: no price configured for plan %s", plan)
		return nil, fmt.Errorf("%w: CreateMembership - no price for plan %s", ErrInternal, plan)
	}

	// 2. Сохранение
	created, err := s.repo.CreateMembership(ctx, &domain.FitnessMembership{
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Plan:      plan,
		StartDate: domain.DateOnly(start),
		EndDate:   plan.EndDate(start),
		Price:     price,
		Status:    domain.RegistrationActive,
	})
	if err != nil {
		s.logger.Error("CreateMembership: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMembership - repository error: %v", ErrInternal, err)
	}

	// 3. Уведомление
	s.publish(ctx, "CreateMembership", notifier.KindMembership, created.ID, 0, created.Name, created.Email)

	s.logger.Info("CreateMembership: created membership id=%d, plan=%s", created.ID, plan)
	resp := models.FromDomainMembership(created)
	return &resp, nil
}

// CreateCourse создает курс (админка)
func (s *Service) CreateCourse(ctx context.Context, req *models.CourseRequest) (*models.CourseResponse, error) {
	course, err := s.courseFromRequest(req)
	if err != nil {
		s.logger.Warn("CreateCourse: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		s.logger.Error("CreateCourse: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourse - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourse: created course id=%d", created.ID)
	resp := models.FromDomainCourse(created)
	return &resp, nil
}

// UpdateCourse обновляет курс (админка)
func (s *Service) UpdateCourse(ctx context.Context, id int64, req *models.CourseRequest) (*models.CourseResponse, error) {
	course, err := s.courseFromRequest(req)
	if err != nil {
		s.logger.Warn("UpdateCourse: validation failed for course id=%d: %v", id, err)
		return nil, err
	}
	course.ID = id

	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		if errors.Is(err, fitnessRepo.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("UpdateCourse: repository error for course id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCourse - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCourse: updated course id=%d", id)
	resp := models.FromDomainCourse(course)
	return &resp, nil
}

// DeleteCourse удаляет курс (админка)
func (s *Service) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, fitnessRepo.ErrCourseNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("DeleteCourse: repository error for course id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCourse - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCourse: deleted course id=%d", id)
	return nil
}

// ListRegistrations записи на курс (админка)
func (s *Service) ListRegistrations(ctx context.Context, courseID int64) ([]models.RegistrationResponse, error) {
	if _, err := s.getCourse(ctx, "ListRegistrations", courseID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListRegistrations(ctx, courseID)
	if err != nil {
		s.logger.Error("ListRegistrations: repository error for course id=%d: %v", courseID, err)
		return nil, fmt.Errorf("%w: ListRegistrations - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRegistrations(list), nil
}

// UpdateRegistrationStatus меняет статус записи на курс (админка)
func (s *Service) UpdateRegistrationStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	status := domain.RegistrationStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateRegistrationStatus(ctx, id, status); err != nil {
		if errors.Is(err, fitnessRepo.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}
		s.logger.Error("UpdateRegistrationStatus: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateRegistrationStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRegistrationStatus: registration id=%d -> %s", id, status)
	return nil
}

// ListMemberships абонементы (админка), опционально по статусу
func (s *Service) ListMemberships(ctx context.Context, status *string) ([]models.MembershipResponse, error) {
	var filter *domain.RegistrationStatus
	if status != nil && *status != "" {
		st := domain.RegistrationStatus(*status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		filter = &st
	}

	list, err := s.repo.ListMemberships(ctx, filter)
	if err != nil {
		s.logger.Error("ListMemberships: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMemberships - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainMemberships(list), nil
}

// UpdateMembershipStatus меняет статус абонемента (админка)
func (s *Service) UpdateMembershipStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	status := domain.RegistrationStatus(req.Status)
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateMembershipStatus(ctx, id, status); err != nil {
		if errors.Is(err, fitnessRepo.ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		s.logger.Error("UpdateMembershipStatus: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateMembershipStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateMembershipStatus: membership id=%d -> %s", id, status)
	return nil
}

func (s *Service) getCourse(ctx context.Context, op string, id int64) (*domain.FitnessCourse, error) {
	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, fitnessRepo.ErrCourseNotFound) {
			s.logger.Warn("%s: course id=%d not found", op, id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("%s: repository error for course id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return course, nil
}

// publish метрика и уведомление после фиксации записи; ошибка брокера не отменяет запись
func (s *Service) publish(ctx context.Context, op, kind string, id, targetID int64, name, contact string) {
	s.metrics.ReservationCreated(kind)
	if err := s.notifier.ReservationCreated(ctx, notifier.ReservationPayload{
		Kind:          kind,
		ReservationID: id,
		TargetID:      targetID,
		Name:          name,
		Contact:       contact,
	}); err != nil {
		s.logger.Warn("%s: failed to publish %s id=%d: %v", op, kind, id, err)
	}
}

func (s *Service) courseFromRequest(req *models.CourseRequest) (*domain.FitnessCourse, error) {
	course, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if course.Capacity < 0 || course.Price < 0 {
		return nil, fmt.Errorf("%w: price and capacity must not be negative", ErrInvalidInput)
	}
	return course, nil
}
