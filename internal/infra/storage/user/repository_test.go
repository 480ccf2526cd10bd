package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

func TestRepository_Create_EmailTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("guest@example.com", "hash", "Guest", nil, "guest").
		WillReturnError(&pq.Error{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.User{
		Email:        "  Guest@Example.com ",
		PasswordHash: "hash",
		Name:         "Guest",
		Role:         domain.RoleGuest,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "admin@example.com", "hash", "Admin", nil, "admin", now, now))

	user, err := repo.GetByEmail(context.Background(), "ADMIN@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Nil(t, user.Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}
