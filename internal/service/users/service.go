package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	userRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ResortService/internal/service/users/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// bcrypt обрезает пароль после 72 байт
	maxPasswordLength = 72
)

// Service сервис пользователей
type Service struct {
	userRepo   UserRepository
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса пользователей
// bcryptCost ниже bcrypt.MinCost заменяется на bcrypt.DefaultCost
func NewService(userRepo UserRepository, bcryptCost int, logger Logger) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register регистрирует пользователя с ролью guest
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	// 1. Валидация
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength || len(req.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d..%d characters", ErrInvalidInput, domain.MinPasswordLength, maxPasswordLength)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required (max %d chars)", ErrInvalidInput, domain.MaxNameLength)
	}

	// 2. Хеш пароля
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	// 3. Сохранение
	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        req.Phone,
		Role:         domain.RoleGuest,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", email)
			return nil, ErrEmailAlreadyRegistered
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d", created.ID)
	resp := models.FromDomainUser(created)
	return &resp, nil
}

// Login проверяет email и пароль
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	resp := models.FromDomainUser(user)
	return &resp, nil
}

// GetByID профиль пользователя
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainUser(user)
	return &resp, nil
}

// List список пользователей (админка)
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) ([]models.UserResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	list, err := s.userRepo.List(ctx, limit, req.Offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUsers(list), nil
}

// UpdateRole меняет роль пользователя (админка)
func (s *Service) UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest) error {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateRole: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRole: user id=%d -> %s", id, role)
	return nil
}

// Delete удаляет пользователя (админка)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted user id=%d", id)
	return nil
}
