package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
)

// TableReservationRepository интерфейс репозитория брони столиков
type TableReservationRepository interface {
	Create(ctx context.Context, res *domain.TableReservation) (*domain.TableReservation, error)
	GetByID(ctx context.Context, id int64) (*domain.TableReservation, error)
	List(ctx context.Context, filter domain.TableReservationsFilter) ([]*domain.TableReservation, error)
	GuestsAt(ctx context.Context, date time.Time) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableReservationStatus) error
	Delete(ctx context.Context, id int64) error
}

// Notifier публикация событий о новых бронях
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
