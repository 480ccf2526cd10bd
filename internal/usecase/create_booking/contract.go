package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// HouseRepository интерфейс репозитория домов
// Внутри транзакции GetByID блокирует строку дома
type HouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.House, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByHouse(ctx context.Context, houseID int64, from, to time.Time) ([]*domain.Booking, error)
}

// Notifier публикация событий после фиксации транзакции
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	BookingCreated()
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
