package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/psqlbuilder"
)

const (
	categoriesTable = "menu_categories"
	itemsTable      = "menu_items"

	pgForeignKeyViolation = "23503"
)

var itemColumns = []string{
	"id",
	"category_id",
	"name",
	"description",
	"price",
	"weight_grams",
	"image_url",
	"is_available",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий меню ресторана
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCategory создает категорию меню
func (r *Repository) CreateCategory(ctx context.Context, category *domain.MenuCategory) (*domain.MenuCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(categoriesTable).
		Columns("name", "sort_order").
		Values(category.Name, category.SortOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}
	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return category, nil
}

// GetCategory получает категорию по ID
func (r *Repository) GetCategory(ctx context.Context, id int64) (*domain.MenuCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "sort_order", "created_at", "updated_at").
		From(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.MenuCategory
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name, &category.SortOrder, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - scan: %v", ErrScanRow, err)
	}
	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return &category, nil
}

// ListCategories получает все категории по порядку отображения
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.MenuCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "sort_order", "created_at", "updated_at").
		From(categoriesTable).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.MenuCategory, 0)
	for rows.Next() {
		var category domain.MenuCategory
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		category.CreatedAt = createdAt.Time
		category.UpdatedAt = updatedAt.Time
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// UpdateCategory обновляет категорию
func (r *Repository) UpdateCategory(ctx context.Context, category *domain.MenuCategory) error {
	update := psqlbuilder.Update(categoriesTable).
		Set("name", category.Name).
		Set("sort_order", category.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": category.ID})

	return r.exec(ctx, "UpdateCategory", update, ErrCategoryNotFound)
}

// DeleteCategory удаляет пустую категорию
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	err := r.exec(ctx, "DeleteCategory", psqlbuilder.Delete(categoriesTable).Where(squirrel.Eq{"id": id}), ErrCategoryNotFound)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return ErrCategoryNotEmpty
	}

	return err
}

// CreateItem создает позицию меню
func (r *Repository) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(itemsTable).
		Columns("category_id", "name", "description", "price", "weight_grams", "image_url", "is_available", "sort_order").
		Values(
			item.CategoryID,
			item.Name,
			item.Description,
			item.Price,
			item.WeightGrams,
			item.ImageURL,
			item.IsAvailable,
			item.SortOrder,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateItem - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateItem - execute insert: %v", ErrExecQuery, err)
	}
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetItem получает позицию меню по ID
func (r *Repository) GetItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItem - build select query: %v", ErrBuildQuery, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetItem - scan: %v", ErrScanRow, err)
	}

	return item, nil
}

// ListItems получает позиции меню
// categoryID (если не nil) ограничивает одной категорией, onlyAvailable скрывает снятые позиции
func (r *Repository) ListItems(ctx context.Context, categoryID *int64, onlyAvailable bool) ([]*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		OrderBy("category_id ASC", "sort_order ASC", "id ASC")
	if categoryID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category_id": *categoryID})
	}
	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// UpdateItem обновляет позицию меню
func (r *Repository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	update := psqlbuilder.Update(itemsTable).
		Set("category_id", item.CategoryID).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("price", item.Price).
		Set("weight_grams", item.WeightGrams).
		Set("image_url", item.ImageURL).
		Set("is_available", item.IsAvailable).
		Set("sort_order", item.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID})

	return r.exec(ctx, "UpdateItem", update, ErrItemNotFound)
}

// DeleteItem удаляет позицию меню
func (r *Repository) DeleteItem(ctx context.Context, id int64) error {
	return r.exec(ctx, "DeleteItem", psqlbuilder.Delete(itemsTable).Where(squirrel.Eq{"id": id}), ErrItemNotFound)
}

// exec возвращает ошибку драйвера обернутой, чтобы вызывающий мог проверить код postgres через errors.As
func (r *Repository) exec(ctx context.Context, op string, builder squirrel.Sqlizer, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.WeightGrams,
		&item.ImageURL,
		&item.IsAvailable,
		&item.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
