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

const membershipsTable = "fitness_memberships"

var membershipColumns = []string{
	"id",
	"user_id",
	"name",
	"email",
	"phone",
	"plan",
	"start_date",
	"end_date",
	"price",
	"status",
	"created_at",
	"updated_at",
}

// CreateMembership оформляет абонемент
func (r *Repository) CreateMembership(ctx context.Context, m *domain.FitnessMembership) (*domain.FitnessMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(membershipsTable).
		Columns("user_id", "name", "email", "phone", "plan", "start_date", "end_date", "price", "status").
		Values(m.UserID, m.Name, m.Email, m.Phone, m.Plan, m.StartDate, m.EndDate, m.Price, m.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMembership - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateMembership - execute insert: %v", ErrExecQuery, err)
	}
	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// ListMemberships получает абонементы; status (если не nil) фильтрует по статусу
func (r *Repository) ListMemberships(ctx context.Context, status *domain.RegistrationStatus) ([]*domain.FitnessMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(membershipColumns...).
		From(membershipsTable).
		OrderBy("start_date DESC", "id DESC")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMemberships - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMemberships - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	memberships := make([]*domain.FitnessMembership, 0)
	for rows.Next() {
		var m domain.FitnessMembership
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Plan,
			&m.StartDate,
			&m.EndDate,
			&m.Price,
			&m.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListMemberships - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time
		memberships = append(memberships, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMemberships - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}

// UpdateMembershipStatus меняет статус абонемента
func (r *Repository) UpdateMembershipStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error {
	update := psqlbuilder.Update(membershipsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "UpdateMembershipStatus", update, ErrMembershipNotFound)
}
