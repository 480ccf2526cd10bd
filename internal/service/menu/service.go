package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-ResortService/internal/service/menu/models"
)

// Service сервис меню ресторана
type Service struct {
	repo   MenuRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(repo MenuRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetMenu публичное меню: категории с доступными позициями
func (s *Service) GetMenu(ctx context.Context) (*models.MenuResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("GetMenu: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: GetMenu - list categories: %v", ErrInternal, err)
	}

	items, err := s.repo.ListItems(ctx, nil, true)
	if err != nil {
		s.logger.Error("GetMenu: failed to list items: %v", err)
		return nil, fmt.Errorf("%w: GetMenu - list items: %v", ErrInternal, err)
	}

	sections := domain.GroupMenu(categories, items)
	s.logger.Info("GetMenu: %d sections, %d items", len(sections), len(items))
	return models.FromDomainSections(sections), nil
}

// ListCategories список категорий (админка)
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCategories(categories), nil
}

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	created, err := s.repo.CreateCategory(ctx, &domain.MenuCategory{Name: name, SortOrder: req.SortOrder})
	if err != nil {
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: created category id=%d name=%s", created.ID, created.Name)
	resp := models.FromDomainCategory(created)
	return &resp, nil
}

// UpdateCategory обновляет категорию
func (s *Service) UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	category := &domain.MenuCategory{ID: id, Name: name, SortOrder: req.SortOrder}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, menuRepo.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("UpdateCategory: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCategory: updated category id=%d", id)
	resp := models.FromDomainCategory(category)
	return &resp, nil
}

// DeleteCategory удаляет пустую категорию
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		switch {
		case errors.Is(err, menuRepo.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, menuRepo.ErrCategoryNotEmpty):
			s.logger.Warn("DeleteCategory: category id=%d has items", id)
			return ErrCategoryNotEmpty
		}
		s.logger.Error("DeleteCategory: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCategory: deleted category id=%d", id)
	return nil
}

// ListItems список позиций (админка), включая снятые с продажи
func (s *Service) ListItems(ctx context.Context, categoryID *int64) ([]models.ItemResponse, error) {
	items, err := s.repo.ListItems(ctx, categoryID, false)
	if err != nil {
		s.logger.Error("ListItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListItems - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainItems(items), nil
}

// CreateItem создает позицию меню в существующей категории
func (s *Service) CreateItem(ctx context.Context, req *models.ItemRequest) (*models.ItemResponse, error) {
	item := req.ToDomain()
	if err := s.validateItem(ctx, "CreateItem", item); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		s.logger.Error("CreateItem: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItem: created item id=%d in category=%d", created.ID, created.CategoryID)
	resp := models.FromDomainItem(created)
	return &resp, nil
}

// UpdateItem обновляет позицию меню
func (s *Service) UpdateItem(ctx context.Context, id int64, req *models.ItemRequest) (*models.ItemResponse, error) {
	item := req.ToDomain()
	item.ID = id
	if err := s.validateItem(ctx, "UpdateItem", item); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateItem: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateItem: updated item id=%d", id)
	resp := models.FromDomainItem(item)
	return &resp, nil
}

// DeleteItem удаляет позицию меню
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, menuRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("DeleteItem: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteItem: deleted item id=%d", id)
	return nil
}

func (s *Service) validateItem(ctx context.Context, op string, item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || len(item.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if item.WeightGrams != nil && *item.WeightGrams <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}

	if _, err := s.repo.GetCategory(ctx, item.CategoryID); err != nil {
		if errors.Is(err, menuRepo.ErrCategoryNotFound) {
			s.logger.Warn("%s: category id=%d not found", op, item.CategoryID)
			return ErrCategoryNotFound
		}
		s.logger.Error("%s: failed to get category id=%d: %v", op, item.CategoryID, err)
		return fmt.Errorf("%w: %s - get category: %v", ErrInternal, op, err)
	}
	return nil
}
