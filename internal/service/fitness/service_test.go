package fitness

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	fitnessRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/fitness"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ResortService/internal/service/fitness/models"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
	"github.com/m04kA/SMC-ResortService/pkg/metrics"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) CreateCourse(ctx context.Context, c *domain.FitnessCourse) (*domain.FitnessCourse, error) {
	args := m.Called(ctx, c)
	res, _ := args.Get(0).(*domain.FitnessCourse)
	return res, args.Error(1)
}

func (m *repoMock) GetCourse(ctx context.Context, id int64) (*domain.FitnessCourse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.FitnessCourse)
	return res, args.Error(1)
}

func (m *repoMock) ListCourses(ctx context.Context, onlyActive bool) ([]*domain.FitnessCourse, error) {
	args := m.Called(ctx, onlyActive)
	res, _ := args.Get(0).([]*domain.FitnessCourse)
	return res, args.Error(1)
}

func (m *repoMock) UpdateCourse(ctx context.Context, c *domain.FitnessCourse) error {
	return m.Called(ctx, c).Error(0)
}

func (m *repoMock) DeleteCourse(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateRegistration(ctx context.Context, r *domain.FitnessCourseRegistration) (*domain.FitnessCourseRegistration, error) {
	args := m.Called(ctx, r)
	res, _ := args.Get(0).(*domain.FitnessCourseRegistration)
	return res, args.Error(1)
}

func (m *repoMock) ListRegistrations(ctx context.Context, courseID int64) ([]*domain.FitnessCourseRegistration, error) {
	args := m.Called(ctx, courseID)
	res, _ := args.Get(0).([]*domain.FitnessCourseRegistration)
	return res, args.Error(1)
}

func (m *repoMock) CountActiveRegistrations(ctx context.Context, courseID int64) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *repoMock) CreateMembership(ctx context.Context, ms *domain.FitnessMembership) (*domain.FitnessMembership, error) {
	args := m.Called(ctx, ms)
	res, _ := args.Get(0).(*domain.FitnessMembership)
	return res, args.Error(1)
}

func (m *repoMock) ListMemberships(ctx context.Context, status *domain.RegistrationStatus) ([]*domain.FitnessMembership, error) {
	args := m.Called(ctx, status)
	res, _ := args.Get(0).([]*domain.FitnessMembership)
	return res, args.Error(1)
}

func (m *repoMock) UpdateMembershipStatus(ctx context.Context, id int64, status domain.RegistrationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) ReservationCreated(ctx context.Context, p notifier.ReservationPayload) error {
	return m.Called(ctx, p).Error(0)
}

type passTx struct{ calls int }

func (p *passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// conflictTx проигрывает параллельной транзакции все попытки
type conflictTx struct{}

func (conflictTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: %w", txmanager.ErrSerialization, &pq.Error{Code: "40001"})
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var prices = map[domain.MembershipPlan]float64{
	domain.PlanMonthly:   3000,
	domain.PlanQuarterly: 8000,
	domain.PlanAnnual:    28000,
}

func newService() (*Service, *repoMock, *notifierMock, *passTx) {
	repo := &repoMock{}
	n := &notifierMock{}
	tx := &passTx{}
	svc := NewService(repo, n, metrics.NewRecorder(nil, "test"), tx, prices, logger.Nop())
	svc.timeProvider = fixedTime{t: now}
	return svc, repo, n, tx
}

func yoga(capacity int) *domain.FitnessCourse {
	return &domain.FitnessCourse{ID: 3, Title: "Yoga", Capacity: capacity, IsActive: true}
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{Name: "Anna", Email: "anna@example.com", Phone: "+7911"}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, n, tx := newService()
		repo.On("GetCourse", ctx, int64(3)).Return(yoga(12), nil)
		repo.On("CountActiveRegistrations", ctx, int64(3)).Return(11, nil)
		repo.On("CreateRegistration", ctx, mock.MatchedBy(func(r *domain.FitnessCourseRegistration) bool {
			return r.CourseID == 3 && r.Status == domain.RegistrationActive && r.Name == "Anna"
		})).Return(&domain.FitnessCourseRegistration{ID: 9, CourseID: 3, Name: "Anna", Status: domain.RegistrationActive}, nil)
		n.On("ReservationCreated", ctx, mock.MatchedBy(func(p notifier.ReservationPayload) bool {
			return p.Kind == notifier.KindCourse && p.ReservationID == 9 && p.TargetID == 3
		})).Return(nil)

		resp, err := svc.Register(ctx, 3, registerRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, 1, tx.calls)
		n.AssertExpectations(t)
	})

	t.Run("course full", func(t *testing.T) {
		svc, repo, n, _ := newService()
		repo.On("GetCourse", ctx, int64(3)).Return(yoga(12), nil)
		repo.On("CountActiveRegistrations", ctx, int64(3)).Return(12, nil)

		_, err := svc.Register(ctx, 3, registerRequest())
		assert.ErrorIs(t, err, ErrCourseFull)
		repo.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything)
		n.AssertNotCalled(t, "ReservationCreated", mock.Anything, mock.Anything)
	})

	t.Run("concurrent registration took the last place", func(t *testing.T) {
		svc, _, n, _ := newService()
		svc.txManager = conflictTx{}

		_, err := svc.Register(ctx, 3, registerRequest())
		assert.ErrorIs(t, err, ErrCourseFull)
		assert.NotErrorIs(t, err, ErrInternal)
		n.AssertNotCalled(t, "ReservationCreated", mock.Anything, mock.Anything)
	})

	t.Run("inactive course", func(t *testing.T) {
		svc, repo, _, _ := newService()
		course := yoga(12)
		course.IsActive = false
		repo.On("GetCourse", ctx, int64(3)).Return(course, nil)

		_, err := svc.Register(ctx, 3, registerRequest())
		assert.ErrorIs(t, err, ErrCourseInactive)
	})

	t.Run("course not found", func(t *testing.T) {
		svc, repo, _, _ := newService()
		repo.On("GetCourse", ctx, int64(3)).Return(nil, fitnessRepo.ErrCourseNotFound)

		_, err := svc.Register(ctx, 3, registerRequest())
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("invalid contact", func(t *testing.T) {
		svc, _, _, tx := newService()
		req := registerRequest()
		req.Email = "not-an-email"

		_, err := svc.Register(ctx, 3, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, tx.calls)
	})

	t.Run("notifier failure does not fail registration", func(t *testing.T) {
		svc, repo, n, _ := newService()
		repo.On("GetCourse", ctx, int64(3)).Return(yoga(0), nil)
		repo.On("CreateRegistration", ctx, mock.Anything).Return(&domain.FitnessCourseRegistration{ID: 1, CourseID: 3}, nil)
		n.On("ReservationCreated", ctx, mock.Anything).Return(errors.New("broker down"))

		_, err := svc.Register(ctx, 3, registerRequest())
		require.NoError(t, err)
		repo.AssertNotCalled(t, "CountActiveRegistrations", mock.Anything, mock.Anything)
	})
}

func TestService_CreateMembership(t *testing.T) {
	ctx := context.Background()

	request := func(plan, start string) *models.MembershipRequest {
		return &models.MembershipRequest{Name: "Anna", Email: "anna@example.com", Phone: "+7911", Plan: plan, StartDate: start}
	}

	t.Run("quarterly plan", func(t *testing.T) {
		svc, repo, n, _ := newService()
		repo.On("CreateMembership", ctx, mock.MatchedBy(func(m *domain.FitnessMembership) bool {
			return m.Plan == domain.PlanQuarterly &&
				m.Price == 8000 &&
				m.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) &&
				m.EndDate.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
		})).Return(&domain.FitnessMembership{
			ID:        5,
			Plan:      domain.PlanQuarterly,
			StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			Price:     8000,
			Status:    domain.RegistrationActive,
		}, nil)
		n.On("ReservationCreated", ctx, mock.MatchedBy(func(p notifier.ReservationPayload) bool {
			return p.Kind == notifier.KindMembership && p.ReservationID == 5
		})).Return(nil)

		resp, err := svc.CreateMembership(ctx, request("quarterly", "2025-06-01"))
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", resp.EndDate)
		assert.Equal(t, 8000.0, resp.Price)
		n.AssertExpectations(t)
	})

	t.Run("start in the past", func(t *testing.T) {
		svc, _, _, _ := newService()
		_, err := svc.CreateMembership(ctx, request("monthly", "2025-05-31"))
		assert.ErrorIs(t, err, ErrStartDateInPast)
	})

	t.Run("unknown plan", func(t *testing.T) {
		svc, _, _, _ := newService()
		_, err := svc.CreateMembership(ctx, request("weekly", "2025-06-10"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad date", func(t *testing.T) {
		svc, _, _, _ := newService()
		_, err := svc.CreateMembership(ctx, request("annual", "10.06.2025"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_CourseAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("create parses start time", func(t *testing.T) {
		svc, repo, _, _ := newService()
		start := "09:30"
		repo.On("CreateCourse", ctx, mock.MatchedBy(func(c *domain.FitnessCourse) bool {
			return c.StartTime != nil && c.StartTime.String() == "09:30" && c.IsActive
		})).Return(&domain.FitnessCourse{ID: 1, Title: "Pilates", IsActive: true}, nil)

		resp, err := svc.CreateCourse(ctx, &models.CourseRequest{Title: "Pilates", StartTime: &start, Capacity: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("create rejects bad start time", func(t *testing.T) {
		svc, _, _, _ := newService()
		start := "25:99"
		_, err := svc.CreateCourse(ctx, &models.CourseRequest{Title: "Pilates", StartTime: &start})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("update missing", func(t *testing.T) {
		svc, repo, _, _ := newService()
		repo.On("UpdateCourse", ctx, mock.Anything).Return(fitnessRepo.ErrCourseNotFound)

		_, err := svc.UpdateCourse(ctx, 42, &models.CourseRequest{Title: "Box"})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		svc, repo, _, _ := newService()
		repo.On("DeleteCourse", ctx, int64(7)).Return(nil)
		require.NoError(t, svc.DeleteCourse(ctx, 7))
	})

	t.Run("inactive course hidden from public", func(t *testing.T) {
		svc, repo, _, _ := newService()
		course := yoga(5)
		course.IsActive = false
		repo.On("GetCourse", ctx, int64(3)).Return(course, nil)

		_, err := svc.GetCourse(ctx, 3, false)
		assert.ErrorIs(t, err, ErrCourseNotFound)

		resp, err := svc.GetCourse(ctx, 3, true)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})
}

func TestService_Statuses(t *testing.T) {
	ctx := context.Background()

	t.Run("registration not found", func(t *testing.T) {
		svc, repo, _, _ := newService()
		repo.On("UpdateRegistrationStatus", ctx, int64(2), domain.RegistrationCancelled).Return(fitnessRepo.ErrRegistrationNotFound)

		err := svc.UpdateRegistrationStatus(ctx, 2, &models.UpdateStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})

	t.Run("membership invalid status", func(t *testing.T) {
		svc, _, _, _ := newService()
		err := svc.UpdateMembershipStatus(ctx, 2, &models.UpdateStatusRequest{Status: "frozen"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("list memberships by status", func(t *testing.T) {
		svc, repo, _, _ := newService()
		status := "expired"
		repo.On("ListMemberships", ctx, mock.MatchedBy(func(s *domain.RegistrationStatus) bool {
			return s != nil && *s == domain.RegistrationExpired
		})).Return([]*domain.FitnessMembership{{ID: 1, Plan: domain.PlanMonthly, Status: domain.RegistrationExpired}}, nil)

		list, err := svc.ListMemberships(ctx, &status)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "expired", list[0].Status)
	})
}
