package house

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

const table = "houses"

// pgForeignKeyViolation код ошибки postgres при нарушении внешнего ключа
const pgForeignKeyViolation = "23503"

var columns = []string{
	"id",
	"name",
	"description",
	"capacity",
	"base_rate",
	"weekend_multiplier",
	"amenities",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий домов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает дом
func (r *Repository) Create(ctx context.Context, house *domain.House) (*domain.House, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "description", "capacity", "base_rate", "weekend_multiplier", "amenities", "image_url", "is_active").
		Values(
			house.Name,
			house.Description,
			house.Capacity,
			house.BaseRate,
			house.WeekendMultiplier,
			pq.Array(house.Amenities),
			house.ImageURL,
			house.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&house.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	house.CreatedAt = createdAt.Time
	house.UpdatedAt = updatedAt.Time

	return house, nil
}

// GetByID получает дом по ID
// Внутри транзакции строка дома блокируется, это сериализует бронирования одного дома
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	house, err := scanHouse(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHouseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan house: %v", ErrScanRow, err)
	}

	return house, nil
}

// List получает дома; onlyActive скрывает снятые с публикации
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.House, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return r.query(ctx, "List", selectBuilder)
}

// ListAvailable получает активные дома вместимостью не меньше guests
func (r *Repository) ListAvailable(ctx context.Context, guests int) ([]*domain.House, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.GtOrEq{"capacity": guests}).
		OrderBy("base_rate ASC", "id ASC")

	return r.query(ctx, "ListAvailable", selectBuilder)
}

// Update обновляет поля дома
func (r *Repository) Update(ctx context.Context, house *domain.House) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", house.Name).
		Set("description", house.Description).
		Set("capacity", house.Capacity).
		Set("base_rate", house.BaseRate).
		Set("weekend_multiplier", house.WeekendMultiplier).
		Set("amenities", pq.Array(house.Amenities)).
		Set("is_active", house.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": house.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return checkAffected(executor.ExecContext(ctx, query, args...))
}

// SetImage сохраняет URL загруженной картинки
func (r *Repository) SetImage(ctx context.Context, id int64, url string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("image_url", url).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetImage - build update query: %v", ErrBuildQuery, err)
	}

	return checkAffected(executor.ExecContext(ctx, query, args...))
}

// Delete удаляет дом. Если на дом есть бронирования, возвращает ErrHouseInUse
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return ErrHouseInUse
	}

	return checkAffected(result, err)
}

func (r *Repository) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.House, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	houses := make([]*domain.House, 0)
	for rows.Next() {
		house, err := scanHouse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		houses = append(houses, house)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return houses, nil
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("%w: execute: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHouseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHouse(row rowScanner) (*domain.House, error) {
	var house domain.House
	var multiplier sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&house.ID,
		&house.Name,
		&house.Description,
		&house.Capacity,
		&house.BaseRate,
		&multiplier,
		pq.Array(&house.Amenities),
		&house.ImageURL,
		&house.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if multiplier.Valid {
		m := multiplier.Float64
		house.WeekendMultiplier = &m
	}
	if house.Amenities == nil {
		house.Amenities = []string{}
	}
	house.CreatedAt = createdAt.Time
	house.UpdatedAt = updatedAt.Time

	return &house, nil
}
