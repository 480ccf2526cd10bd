package notifier

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher общий контракт Producer и Noop
type Publisher interface {
	BookingCreated(ctx context.Context, b *domain.Booking) error
	BookingCancelled(ctx context.Context, b *domain.Booking) error
	BookingStatusChanged(ctx context.Context, b *domain.Booking, previous domain.BookingStatus) error
	ReservationCreated(ctx context.Context, payload ReservationPayload) error
	Close() error
}

var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = Noop{}
)
