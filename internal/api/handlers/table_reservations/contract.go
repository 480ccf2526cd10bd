package table_reservations

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/service/reservations/models"
)

type ReservationService interface {
	Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error)
	List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
