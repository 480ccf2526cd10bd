package fitness

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/psqlbuilder"
)

const registrationsTable = "fitness_course_registrations"

var registrationColumns = []string{
	"id",
	"course_id",
	"user_id",
	"name",
	"email",
	"phone",
	"status",
	"created_at",
	"updated_at",
}

// CreateRegistration записывает гостя на направление
func (r *Repository) CreateRegistration(ctx context.Context, reg *domain.FitnessCourseRegistration) (*domain.FitnessCourseRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(registrationsTable).
		Columns("course_id", "user_id", "name", "email", "phone", "status").
		Values(reg.CourseID, reg.UserID, reg.Name, reg.Email, reg.Phone, reg.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegistration - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reg.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateRegistration - execute insert: %v", ErrExecQuery, err)
	}
	reg.CreatedAt = createdAt.Time
	reg.UpdatedAt = updatedAt.Time

	return reg, nil
}

// ListRegistrations получает записи на направление
func (r *Repository) ListRegistrations(ctx context.Context, courseID int64) ([]*domain.FitnessCourseRegistration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From(registrationsTable).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRegistrations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRegistrations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	registrations := make([]*domain.FitnessCourseRegistration, 0)
	for rows.Next() {
		var reg domain.FitnessCourseRegistration
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&reg.ID,
			&reg.CourseID,
			&reg.UserID,
			&reg.Name,
			&reg.Email,
			&reg.Phone,
			&reg.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRegistrations - scan row: %v", ErrScanRow, err)
		}
		reg.CreatedAt = createdAt.Time
		reg.UpdatedAt = updatedAt.Time
		registrations = append(registrations, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRegistrations - rows error: %v", ErrScanRow, err)
	}

	return registrations, nil
}

// CountActiveRegistrations считает активные записи на направление
// Вызывать в транзакции после GetCourse, который блокирует строку направления
func (r *Repository) CountActiveRegistrations(ctx context.Context, courseID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(registrationsTable).
		Where(squirrel.Eq{"course_id": courseID}).
		Where(squirrel.Eq{"status": domain.RegistrationActive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveRegistrations - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveRegistrations - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateRegistrationStatus меняет статус записи
func (r *Repository) UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error {
	update := psqlbuilder.Update(registrationsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "UpdateRegistrationStatus", update, ErrRegistrationNotFound)
}
