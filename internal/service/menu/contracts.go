package menu

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// MenuRepository интерфейс репозитория меню ресторана
type MenuRepository interface {
	CreateCategory(ctx context.Context, category *domain.MenuCategory) (*domain.MenuCategory, error)
	GetCategory(ctx context.Context, id int64) (*domain.MenuCategory, error)
	ListCategories(ctx context.Context) ([]*domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, category *domain.MenuCategory) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListItems(ctx context.Context, categoryID *int64, onlyAvailable bool) ([]*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
