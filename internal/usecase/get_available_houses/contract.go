package get_available_houses

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// HouseRepository интерфейс репозитория домов
type HouseRepository interface {
	ListAvailable(ctx context.Context, guests int) ([]*domain.House, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByHouses(ctx context.Context, houseIDs []int64, from, to time.Time) ([]*domain.Booking, error)
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

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
