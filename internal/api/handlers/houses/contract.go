package houses

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ResortService/internal/service/houses/models"
)

type HouseService interface {
	List(ctx context.Context, onlyActive bool) (*models.HouseListResponse, error)
	GetByID(ctx context.Context, id int64, includeInactive bool) (*models.HouseResponse, error)
	Create(ctx context.Context, req *models.HouseRequest) (*models.HouseResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateHouseRequest) (*models.HouseResponse, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, req *models.UploadImageRequest, body io.Reader) (*models.HouseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
