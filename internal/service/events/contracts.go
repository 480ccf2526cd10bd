package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
)

// EventRepository интерфейс репозитория мероприятий
// Внутри транзакции GetByID блокирует строку мероприятия
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, onlyPublished bool, from *time.Time) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error

	CreateReservation(ctx context.Context, res *domain.EventReservation) (*domain.EventReservation, error)
	ListReservations(ctx context.Context, eventID int64) ([]*domain.EventReservation, error)
	ReservedSeats(ctx context.Context, eventID int64) (int, error)
	UpdateReservationStatus(ctx context.Context, id int64, status domain.EventReservationStatus) error
}

// Notifier публикация событий о новых записях
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
