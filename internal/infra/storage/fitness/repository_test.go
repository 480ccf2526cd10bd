package fitness

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestRepository_GetCourse_ParsesStartTime(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM fitness_courses WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow(int64(1), "Yoga", "", "Anna", "Mon, Wed", "09:30:00", 12, 500.0, true, now, now))

	course, err := repo.GetCourse(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, course.StartTime)
	assert.Equal(t, "09:30", course.StartTime.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActiveRegistrations(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM fitness_course_registrations WHERE course_id = \$1 AND status = \$2`).
		WithArgs(int64(1), "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	count, err := repo.CountActiveRegistrations(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 11, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateMembershipStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE fitness_memberships SET status = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateMembershipStatus(context.Background(), 3, domain.RegistrationExpired)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
