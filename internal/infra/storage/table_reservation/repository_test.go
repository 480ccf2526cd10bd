package table_reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
)

func TestRepository_GuestsAt_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	wrapped := dbmetrics.Wrap(db, nil, "test")
	repo := NewRepository(wrapped)

	date := time.Date(2025, 6, 7, 19, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, guests FROM table_reservations WHERE reservation_date = \$1 AND status <> \$2 FOR UPDATE`).
		WithArgs(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"id", "guests"}).AddRow(int64(1), 4).AddRow(int64(2), 6))
	mock.ExpectRollback()

	tx, err := wrapped.BeginTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelSerializable})
	require.NoError(t, err)

	guests, err := repo.GuestsAt(dbmetrics.WithTx(context.Background(), tx), date)
	require.NoError(t, err)
	assert.Equal(t, 10, guests)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(dbmetrics.Wrap(db, nil, "test"))

	mock.ExpectExec(`DELETE FROM table_reservations WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
