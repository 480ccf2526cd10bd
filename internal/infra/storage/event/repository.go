package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/psqlbuilder"
)

const (
	eventsTable       = "events"
	reservationsTable = "event_reservations"
)

var eventColumns = []string{
	"id",
	"title",
	"description",
	"starts_at",
	"ends_at",
	"location",
	"price",
	"capacity",
	"image_url",
	"is_published",
	"created_at",
	"updated_at",
}

var reservationColumns = []string{
	"id",
	"event_id",
	"user_id",
	"name",
	"email",
	"phone",
	"seats",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий мероприятий и записей на них
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мероприятие
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(eventsTable).
		Columns("title", "description", "starts_at", "ends_at", "location", "price", "capacity", "image_url", "is_published").
		Values(
			event.Title,
			event.Description,
			event.StartsAt,
			event.EndsAt,
			event.Location,
			event.Price,
			event.Capacity,
			event.ImageURL,
			event.IsPublished,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает мероприятие. Внутри транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From(eventsTable).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// List получает мероприятия
// onlyPublished скрывает черновики, from (если не nil) отсекает прошедшие
func (r *Repository) List(ctx context.Context, onlyPublished bool, from *time.Time) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From(eventsTable).
		OrderBy("starts_at ASC")
	if onlyPublished {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_published": true})
	}
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"starts_at": *from})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// Update обновляет мероприятие
func (r *Repository) Update(ctx context.Context, event *domain.Event) error {
	update := psqlbuilder.Update(eventsTable).
		Set("title", event.Title).
		Set("description", event.Description).
		Set("starts_at", event.StartsAt).
		Set("ends_at", event.EndsAt).
		Set("location", event.Location).
		Set("price", event.Price).
		Set("capacity", event.Capacity).
		Set("image_url", event.ImageURL).
		Set("is_published", event.IsPublished).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID})

	return r.exec(ctx, "Update", update, ErrEventNotFound)
}

// Delete удаляет мероприятие вместе с записями (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, "Delete", psqlbuilder.Delete(eventsTable).Where(squirrel.Eq{"id": id}), ErrEventNotFound)
}

// CreateReservation создает запись на мероприятие
func (r *Repository) CreateReservation(ctx context.Context, res *domain.EventReservation) (*domain.EventReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(reservationsTable).
		Columns("event_id", "user_id", "name", "email", "phone", "seats", "status").
		Values(res.EventID, res.UserID, res.Name, res.Email, res.Phone, res.Seats, res.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - execute insert: %v", ErrExecQuery, err)
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// ListReservations получает записи на мероприятие
func (r *Repository) ListReservations(ctx context.Context, eventID int64) ([]*domain.EventReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.EventReservation, 0)
	for rows.Next() {
		var res domain.EventReservation
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&res.ID,
			&res.EventID,
			&res.UserID,
			&res.Name,
			&res.Email,
			&res.Phone,
			&res.Seats,
			&res.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListReservations - scan row: %v", ErrScanRow, err)
		}
		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		reservations = append(reservations, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// ReservedSeats считает занятые места (все записи кроме отмененных)
// Вызывать внутри транзакции после GetByID, который блокирует строку мероприятия
func (r *Repository) ReservedSeats(ctx context.Context, eventID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(seats), 0)").
		From(reservationsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		Where(squirrel.NotEq{"status": domain.EventReservationCancelled}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReservedSeats - build select query: %v", ErrBuildQuery, err)
	}

	var seats int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&seats); err != nil {
		return 0, fmt.Errorf("%w: ReservedSeats - scan: %v", ErrScanRow, err)
	}

	return seats, nil
}

// UpdateReservationStatus меняет статус записи
func (r *Repository) UpdateReservationStatus(ctx context.Context, id int64, status domain.EventReservationStatus) error {
	update := psqlbuilder.Update(reservationsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.exec(ctx, "UpdateReservationStatus", update, ErrReservationNotFound)
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

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartsAt,
		&event.EndsAt,
		&event.Location,
		&event.Price,
		&event.Capacity,
		&event.ImageURL,
		&event.IsPublished,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}
