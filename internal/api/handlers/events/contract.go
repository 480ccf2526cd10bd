package events

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/service/events/models"
)

type EventService interface {
	ListUpcoming(ctx context.Context) ([]models.EventResponse, error)
	ListAll(ctx context.Context) ([]models.EventResponse, error)
	GetByID(ctx context.Context, id int64, includeUnpublished bool) (*models.EventResponse, error)
	Reserve(ctx context.Context, eventID int64, req *models.ReserveRequest) (*models.ReservationResponse, error)
	Create(ctx context.Context, req *models.EventRequest) (*models.EventResponse, error)
	Update(ctx context.Context, id int64, req *models.EventRequest) (*models.EventResponse, error)
	Delete(ctx context.Context, id int64) error
	ListReservations(ctx context.Context, eventID int64) ([]models.ReservationResponse, error)
	UpdateReservationStatus(ctx context.Context, id int64, req *models.UpdateReservationStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
