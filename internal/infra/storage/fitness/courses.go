package fitness

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ResortService/pkg/types"
)

const coursesTable = "fitness_courses"

var courseColumns = []string{
	"id",
	"title",
	"description",
	"trainer",
	"schedule",
	"start_time",
	"capacity",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий фитнес-направлений, записей и абонементов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCourse создает направление
func (r *Repository) CreateCourse(ctx context.Context, course *domain.FitnessCourse) (*domain.FitnessCourse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(coursesTable).
		Columns("title", "description", "trainer", "schedule", "start_time", "capacity", "price", "is_active").
		Values(
			course.Title,
			course.Description,
			course.Trainer,
			course.Schedule,
			course.StartTime,
			course.Capacity,
			course.Price,
			course.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourse - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&course.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCourse - execute insert: %v", ErrExecQuery, err)
	}
	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return course, nil
}

// GetCourse получает направление. Внутри транзакции строка блокируется
func (r *Repository) GetCourse(ctx context.Context, id int64) (*domain.FitnessCourse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courseColumns...).
		From(coursesTable).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourse - build select query: %v", ErrBuildQuery, err)
	}

	course, err := scanCourse(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourse - scan: %v", ErrScanRow, err)
	}

	return course, nil
}

// ListCourses получает направления; onlyActive скрывает архивные
func (r *Repository) ListCourses(ctx context.Context, onlyActive bool) ([]*domain.FitnessCourse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courseColumns...).
		From(coursesTable).
		OrderBy("title ASC")
	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.FitnessCourse, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCourses - scan row: %v", ErrScanRow, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourses - rows error: %v", ErrScanRow, err)
	}

	return courses, nil
}

// UpdateCourse обновляет направление
func (r *Repository) UpdateCourse(ctx context.Context, course *domain.FitnessCourse) error {
	update := psqlbuilder.Update(coursesTable).
		Set("title", course.Title).
		Set("description", course.Description).
		Set("trainer", course.Trainer).
		Set("schedule", course.Schedule).
		Set("start_time", course.StartTime).
		Set("capacity", course.Capacity).
		Set("price", course.Price).
		Set("is_active", course.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": course.ID})

	return r.exec(ctx, "UpdateCourse", update, ErrCourseNotFound)
}

// DeleteCourse удаляет направление вместе с записями
func (r *Repository) DeleteCourse(ctx context.Context, id int64) error {
	return r.exec(ctx, "DeleteCourse", psqlbuilder.Delete(coursesTable).Where(squirrel.Eq{"id": id}), ErrCourseNotFound)
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.Sqlizer, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
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

func scanCourse(row rowScanner) (*domain.FitnessCourse, error) {
	var course domain.FitnessCourse
	var startTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Trainer,
		&course.Schedule,
		&startTime,
		&course.Capacity,
		&course.Price,
		&course.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		ts, err := types.NewTimeStringFromString(startTime.String)
		if err != nil {
			return nil, err
		}
		course.StartTime = &ts
	}
	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return &course, nil
}
