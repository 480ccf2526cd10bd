package notifier

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// Noop используется, когда kafka.brokers не заданы
type Noop struct{}

func (Noop) BookingCreated(context.Context, *domain.Booking) error { return nil }

func (Noop) BookingCancelled(context.Context, *domain.Booking) error { return nil }

func (Noop) BookingStatusChanged(context.Context, *domain.Booking, domain.BookingStatus) error {
	return nil
}

func (Noop) ReservationCreated(context.Context, ReservationPayload) error { return nil }

func (Noop) Close() error { return nil }
