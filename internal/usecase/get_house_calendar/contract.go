package get_house_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// HouseRepository интерфейс репозитория домов
type HouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.House, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByHouse(ctx context.Context, houseID int64, from, to time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
