package events

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
	eventRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/event"
	"github.com/m04kA/SMC-ResortService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ResortService/internal/service/events/models"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
	"github.com/m04kA/SMC-ResortService/pkg/metrics"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, e)
	res, _ := args.Get(0).(*domain.Event)
	return res, args.Error(1)
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.Event)
	return res, args.Error(1)
}

func (m *repoMock) List(ctx context.Context, onlyPublished bool, from *time.Time) ([]*domain.Event, error) {
	args := m.Called(ctx, onlyPublished, from)
	res, _ := args.Get(0).([]*domain.Event)
	return res, args.Error(1)
}

func (m *repoMock) Update(ctx context.Context, e *domain.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *repoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateReservation(ctx context.Context, r *domain.EventReservation) (*domain.EventReservation, error) {
	args := m.Called(ctx, r)
	res, _ := args.Get(0).(*domain.EventReservation)
	return res, args.Error(1)
}

func (m *repoMock) ListReservations(ctx context.Context, eventID int64) ([]*domain.EventReservation, error) {
	args := m.Called(ctx, eventID)
	res, _ := args.Get(0).([]*domain.EventReservation)
	return res, args.Error(1)
}

func (m *repoMock) ReservedSeats(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) UpdateReservationStatus(ctx context.Context, id int64, status domain.EventReservationStatus) error {
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

func newService() (*Service, *repoMock, *notifierMock, *passTx) {
	repo := &repoMock{}
	n := &notifierMock{}
	tx := &passTx{}
	svc := NewService(repo, n, metrics.NewRecorder(nil, "test"), tx, logger.Nop())
	svc.timeProvider = fixedTime{t: now}
	return svc, repo, n, tx
}

func concert(capacity int) *domain.Event {
	return &domain.Event{
		ID:          4,
		Title:       "Jazz night",
		StartsAt:    now.Add(48 * time.Hour),
		Capacity:    capacity,
		IsPublished: true,
	}
}

func reserveRequest(seats int) *models.ReserveRequest {
	return &models.ReserveRequest{Name: "Ivan", Email: "ivan@example.com", Phone: "+7999", Seats: seats}
}

func TestService_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo, n, tx := newService()
		repo.On("GetByID", ctx, int64(4)).Return(concert(10), nil)
		repo.On("ReservedSeats", ctx, int64(4)).Return(7, nil)
		repo.On("CreateReservation", ctx, mock.MatchedBy(func(r *domain.EventReservation) bool {
			return r.Seats == 3 && r.Status == domain.EventReservationPending
		})).Return(&domain.EventReservation{ID: 1, EventID: 4, Name: "Ivan", Email: "ivan@example.com", Seats: 3, Status: domain.EventReservationPending}, nil)
		n.On("ReservationCreated", ctx, mock.MatchedBy(func(p notifier.ReservationPayload) bool {
			return p.Kind == notifier.KindEvent && p.TargetID == 4
		})).Return(nil)

		resp, err := svc.Reserve(ctx, 4, reserveRequest(3))
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, 1, tx.calls)
		n.AssertExpectations(t)
	})

	t.Run("not enough seats", func(t *testing.T) {
		svc, repo, n, _ := newService()
		repo.On("GetByID", ctx, int64(4)).Return(concert(10), nil)
		repo.On("ReservedSeats", ctx, int64(4)).Return(8, nil)

		_, err := svc.Reserve(ctx, 4, reserveRequest(3))
		assert.ErrorIs(t, err, ErrNotEnoughSeats)
		n.AssertNotCalled(t, "ReservationCreated", mock.Anything, mock.Anything)
	})

	t.Run("concurrent reservation took the seats", func(t *testing.T) {
		svc, _, n, _ := newService()
		svc.txManager = conflictTx{}

		_, err := svc.Reserve(ctx, 4, reserveRequest(3))
		assert.ErrorIs(t, err, ErrNotEnoughSeats)
		assert.NotErrorIs(t, err, ErrInternal)
		n.AssertNotCalled(t, "ReservationCreated", mock.Anything, mock.Anything)
	})

	t.Run("unlimited skips counting", func(t *testing.T) {
		svc, repo, n, _ := newService()
		repo.On("GetByID", ctx, int64(4)).Return(concert(0), nil)
		repo.On("CreateReservation", ctx, mock.Anything).Return(&domain.EventReservation{ID: 2, EventID: 4}, nil)
		n.On("ReservationCreated", ctx, mock.Anything).Return(errors.New("kafka down"))

		_, err := svc.Reserve(ctx, 4, reserveRequest(10))
		require.NoError(t, err)
		repo.AssertNotCalled(t, "ReservedSeats", mock.Anything, mock.Anything)
	})

	t.Run("already started", func(t *testing.T) {
		svc, repo, _, _ := newService()
		e := concert(10)
		e.StartsAt = now.Add(-time.Hour)
		repo.On("GetByID", ctx, int64(4)).Return(e, nil)

		_, err := svc.Reserve(ctx, 4, reserveRequest(1))
		assert.ErrorIs(t, err, ErrEventStarted)
	})

	t.Run("unpublished", func(t *testing.T) {
		svc, repo, _, _ := newService()
		e := concert(10)
		e.IsPublished = false
		repo.On("GetByID", ctx, int64(4)).Return(e, nil)

		_, err := svc.Reserve(ctx, 4, reserveRequest(1))
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("missing event", func(t *testing.T) {
		svc, repo, _, _ := newService()
		repo.On("GetByID", ctx, int64(4)).Return(nil, eventRepo.ErrEventNotFound)

		_, err := svc.Reserve(ctx, 4, reserveRequest(1))
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _, tx := newService()

		_, err := svc.Reserve(ctx, 4, reserveRequest(0))
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Reserve(ctx, 4, reserveRequest(domain.MaxEventSeats+1))
		assert.ErrorIs(t, err, ErrInvalidInput)

		req := reserveRequest(1)
		req.Email = "nope"
		_, err = svc.Reserve(ctx, 4, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, tx.calls)
	})
}

func TestService_GetByID_SeatsLeft(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	repo.On("GetByID", ctx, int64(4)).Return(concert(10), nil)
	repo.On("ReservedSeats", ctx, int64(4)).Return(6, nil)

	resp, err := svc.GetByID(ctx, 4, false)
	require.NoError(t, err)
	require.NotNil(t, resp.SeatsLeft)
	assert.Equal(t, 4, *resp.SeatsLeft)
}

func TestService_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	repo.On("List", ctx, true, mock.MatchedBy(func(from *time.Time) bool {
		return from != nil && from.Equal(now)
	})).Return([]*domain.Event{concert(10)}, nil)

	resp, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newService()

	end := now
	_, err := svc.Create(ctx, &models.EventRequest{Title: "Party", StartsAt: now.Add(time.Hour), EndsAt: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.EventRequest{StartsAt: now})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateReservationStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	repo.On("UpdateReservationStatus", ctx, int64(1), domain.EventReservationConfirmed).Return(nil)
	repo.On("UpdateReservationStatus", ctx, int64(2), domain.EventReservationCancelled).Return(eventRepo.ErrReservationNotFound)

	assert.NoError(t, svc.UpdateReservationStatus(ctx, 1, &models.UpdateReservationStatusRequest{Status: "confirmed"}))
	assert.ErrorIs(t, svc.UpdateReservationStatus(ctx, 2, &models.UpdateReservationStatusRequest{Status: "cancelled"}), ErrReservationNotFound)
	assert.ErrorIs(t, svc.UpdateReservationStatus(ctx, 3, &models.UpdateReservationStatusRequest{Status: "done"}), ErrInvalidInput)
}
