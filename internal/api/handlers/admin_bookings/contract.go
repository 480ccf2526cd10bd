package admin_bookings

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
	UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error
	Delete(ctx context.Context, bookingID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
