package fitness

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
)

// FitnessRepository интерфейс репозитория фитнес-центра
// Внутри транзакции GetCourse блокирует строку курса
type FitnessRepository interface {
	CreateCourse(ctx context.Context, course *domain.FitnessCourse) (*domain.FitnessCourse, error)
	GetCourse(ctx context.Context, id int64) (*domain.FitnessCourse, error)
	ListCourses(ctx context.Context, onlyActive bool) ([]*domain.FitnessCourse, error)
	UpdateCourse(ctx context.Context, course *domain.FitnessCourse) error
	DeleteCourse(ctx context.Context, id int64) error

	CreateRegistration(ctx context.Context, reg *domain.FitnessCourseRegistration) (*domain.FitnessCourseRegistration, error)
	ListRegistrations(ctx context.Context, courseID int64) ([]*domain.FitnessCourseRegistration, error)
	CountActiveRegistrations(ctx context.Context, courseID int64) (int, error)
	UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error

	CreateMembership(ctx context.Context, m *domain.FitnessMembership) (*domain.FitnessMembership, error)
	ListMemberships(ctx context.Context, status *domain.RegistrationStatus) ([]*domain.FitnessMembership, error)
	UpdateMembershipStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error
}

// Notifier публикация событий о записи и абонементах
type Notifier interface {
	ReservationCreated(ctx context.Context, payload notifier.ReservationPayload) error
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	ReservationCreated(kind string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
