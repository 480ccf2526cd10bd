package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
	"github.com/m04kA/SMC-ResortService/pkg/metrics"
	"github.com/m04kA/SMC-ResortService/pkg/ptr"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

// lockingTxManager сериализует транзакции мьютексом, как SERIALIZABLE + FOR UPDATE в БД
type lockingTxManager struct {
	mu    sync.Mutex
	calls int
}

func (m *lockingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return fn(ctx)
}

type houseRepoMock struct{ mock.Mock }

func (m *houseRepoMock) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	args := m.Called(ctx, id)
	house, _ := args.Get(0).(*domain.House)
	return house, args.Error(1)
}

// memoryBookings хранилище бронирований в памяти
type memoryBookings struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	failGet  error
}

func (r *memoryBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = int64(len(r.bookings) + 1)
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *memoryBookings) GetActiveByHouse(_ context.Context, houseID int64, from, to time.Time) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet != nil {
		return nil, r.failGet
	}
	window := domain.DateRange{CheckIn: from, CheckOut: to}
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.HouseID == houseID && b.IsActive() && b.Range().Overlaps(window) {
			result = append(result, b)
		}
	}
	return result, nil
}

// rolledBackBookings ничего не сохраняет, как откаченная транзакция
type rolledBackBookings struct{}

func (rolledBackBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 1
	return b, nil
}

func (rolledBackBookings) GetActiveByHouse(context.Context, int64, time.Time, time.Time) ([]*domain.Booking, error) {
	return nil, nil
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) BookingCreated(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	houses   *houseRepoMock
	bookings *memoryBookings
	notifier *notifierMock
	tx       *lockingTxManager
	uc       *UseCase
}

func newFixture(house *domain.House) *fixture {
	f := &fixture{
		houses:   &houseRepoMock{},
		bookings: &memoryBookings{},
		notifier: &notifierMock{},
		tx:       &lockingTxManager{},
	}
	if house != nil {
		f.houses.On("GetByID", mock.Anything, house.ID).Return(house, nil)
	}
	f.notifier.On("BookingCreated", mock.Anything, mock.Anything).Return(nil)

	f.uc = NewUseCase(f.houses, f.bookings, f.notifier, metrics.NewRecorder(nil, "test"), f.tx, domain.BookingPolicy{
		WeekendMultiplier:  1.25,
		MaxStayNights:      30,
		AdvanceBookingDays: 365,
	}, logger.Nop())
	f.uc.timeProvider = fixedTime{t: day(1)}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:     ptr.Ptr(int64(5)),
		HouseID:    1,
		CheckIn:    day(6),
		CheckOut:   day(9),
		Guests:     2,
		GuestName:  "Anna",
		GuestEmail: "anna@example.com",
		GuestPhone: "+79990000000",
	}
}

func lakeHouse() *domain.House {
	return &domain.House{ID: 1, Name: "Lake house", Capacity: 4, BaseRate: 100, IsActive: true}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(lakeHouse())

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.BookingPending), resp.Status)
	assert.Equal(t, "Lake house", resp.HouseName)
	// Fri 100 + Sat 125 + Sun 125
	assert.InDelta(t, 350.0, resp.Quote.Total, 0.001)
	assert.Equal(t, 3, resp.Quote.NightCount())
	assert.Equal(t, 1, f.tx.calls)
	f.notifier.AssertNumberOfCalls(t, "BookingCreated", 1)
}

func TestExecute_OverlapRejected(t *testing.T) {
	f := newFixture(lakeHouse())
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, HouseID: 1, CheckIn: day(8), CheckOut: day(12), Status: domain.BookingConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesNotAvailable)
	f.notifier.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	f := newFixture(lakeHouse())
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, HouseID: 1, CheckIn: day(3), CheckOut: day(6), Status: domain.BookingConfirmed},
		{ID: 2, HouseID: 1, CheckIn: day(9), CheckOut: day(11), Status: domain.BookingPending},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture(lakeHouse())
	f.bookings.bookings = []*domain.Booking{
		{ID: 1, HouseID: 1, CheckIn: day(6), CheckOut: day(9), Status: domain.BookingCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_ConcurrentRequestsBookOnce(t *testing.T) {
	f := newFixture(lakeHouse())

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDatesNotAvailable)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "no house", mutate: func(r *Request) { r.HouseID = 0 }, wantErr: ErrInvalidInput},
		{name: "no guests", mutate: func(r *Request) { r.Guests = 0 }, wantErr: ErrInvalidInput},
		{name: "bad email", mutate: func(r *Request) { r.GuestEmail = "nope" }, wantErr: ErrInvalidInput},
		{name: "no phone", mutate: func(r *Request) { r.GuestPhone = " " }, wantErr: ErrInvalidInput},
		{name: "zero nights", mutate: func(r *Request) { r.CheckOut = r.CheckIn }, wantErr: ErrInvalidDates},
		{name: "reversed", mutate: func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, wantErr: ErrInvalidDates},
		{name: "past", mutate: func(r *Request) { r.CheckIn = day(1).AddDate(0, 0, -2) }, wantErr: ErrDateInPast},
		{name: "too long", mutate: func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, 31) }, wantErr: ErrStayTooLong},
		{name: "too far", mutate: func(r *Request) {
			r.CheckIn = day(1).AddDate(1, 0, 1)
			r.CheckOut = r.CheckIn.AddDate(0, 0, 2)
		}, wantErr: ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(lakeHouse())
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.tx.calls)
		})
	}
}

func TestExecute_HouseChecks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(nil)
		f.houses.On("GetByID", mock.Anything, int64(1)).Return(nil, houseRepo.ErrHouseNotFound)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrHouseNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		house := lakeHouse()
		house.IsActive = false
		f := newFixture(house)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrHouseInactive)
	})

	t.Run("capacity", func(t *testing.T) {
		house := lakeHouse()
		house.Capacity = 1
		f := newFixture(house)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTooManyGuests)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(lakeHouse())
		f.bookings.failGet = errors.New("connection refused")

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(lakeHouse())
	f.notifier = &notifierMock{}
	f.notifier.On("BookingCreated", mock.Anything, mock.Anything).Return(errors.New("kafka down"))
	f.uc.notifier = f.notifier

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

func TestExecute_SerializationConflictIsDatesNotAvailable(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Каждая попытка фиксации проигрывает параллельной транзакции
	for i := 0; i < 3; i++ {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})
	}

	f := newFixture(lakeHouse())
	f.uc.txManager = txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil, "resort"))
	f.uc.bookingRepo = rolledBackBookings{}

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	f.notifier.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything)
	require.NoError(t, sqlMock.ExpectationsWereMet())
}
