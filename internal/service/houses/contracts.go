package houses

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// HouseRepository интерфейс репозитория домов
type HouseRepository interface {
	Create(ctx context.Context, house *domain.House) (*domain.House, error)
	GetByID(ctx context.Context, id int64) (*domain.House, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.House, error)
	Update(ctx context.Context, house *domain.House) error
	SetImage(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}

// ImageUploader загрузка картинок в объектное хранилище
type ImageUploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
