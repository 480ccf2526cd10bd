package menu

import (
	"context"

	"github.com/m04kA/SMC-ResortService/internal/service/menu/models"
)

type MenuService interface {
	GetMenu(ctx context.Context) (*models.MenuResponse, error)
	ListCategories(ctx context.Context) ([]models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListItems(ctx context.Context, categoryID *int64) ([]models.ItemResponse, error)
	CreateItem(ctx context.Context, req *models.ItemRequest) (*models.ItemResponse, error)
	UpdateItem(ctx context.Context, id int64, req *models.ItemRequest) (*models.ItemResponse, error)
	DeleteItem(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
