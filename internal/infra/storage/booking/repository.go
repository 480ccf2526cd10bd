package booking

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

const table = "bookings"

var columns = []string{
	"id",
	"house_id",
	"user_id",
	"check_in",
	"check_out",
	"guests",
	"total_price",
	"status",
	"guest_name",
	"guest_email",
	"guest_phone",
	"notes",
	"house_name",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями домов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается из usecase внутри сериализуемой транзакции вместе с проверкой доступности
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"house_id",
			"user_id",
			"check_in",
			"check_out",
			"guests",
			"total_price",
			"status",
			"guest_name",
			"guest_email",
			"guest_phone",
			"notes",
			"house_name",
		).
		Values(
			booking.HouseID,
			booking.UserID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Guests,
			booking.TotalPrice,
			booking.Status,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.Notes,
			booking.HouseName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру (админка)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("check_in DESC", "id DESC")

	if filter.HouseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"house_id": *filter.HouseID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
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

	return scanBookings(rows)
}

// GetActiveByHouse получает активные бронирования дома, пересекающиеся с [from, to)
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetActiveByHouse(ctx context.Context, houseID int64, from, to time.Time) ([]*domain.Booking, error) {
	return r.getActive(ctx, "GetActiveByHouse", squirrel.Eq{"house_id": houseID}, from, to)
}

// GetActiveByHouses то же самое для нескольких домов одним запросом
func (r *Repository) GetActiveByHouses(ctx context.Context, houseIDs []int64, from, to time.Time) ([]*domain.Booking, error) {
	if len(houseIDs) == 0 {
		return []*domain.Booking{}, nil
	}
	return r.getActive(ctx, "GetActiveByHouses", squirrel.Eq{"house_id": houseIDs}, from, to)
}

func (r *Repository) getActive(ctx context.Context, op string, houseCond squirrel.Eq, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(houseCond).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"check_in": to}).
		Where(squirrel.Gt{"check_out": from}).
		OrderBy("check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Возвращает ErrStatusChanged, если статус уже изменился (или бронирования нет)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	update := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if to == domain.BookingCancelled {
		update = update.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	if err := r.exec(ctx, "UpdateStatus", update); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return ErrStatusChanged
		}
		return err
	}
	return nil
}

// Cancel отменяет бронирование, находящееся в статусе from
func (r *Repository) Cancel(ctx context.Context, id int64, from domain.BookingStatus) error {
	return r.UpdateStatus(ctx, id, from, domain.BookingCancelled)
}

// Delete удаляет бронирование (физическое удаление, только для админки)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return checkAffected(executor.ExecContext(ctx, query, args...))
}

func (r *Repository) exec(ctx context.Context, op string, update squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	return checkAffected(executor.ExecContext(ctx, query, args...))
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
		return ErrBookingNotFound
	}

	return nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.HouseID,
		&booking.UserID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.Notes,
		&booking.HouseName,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
