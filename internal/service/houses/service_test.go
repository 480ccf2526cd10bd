package houses

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
	"github.com/m04kA/SMC-ResortService/internal/integrations/imagestore"
	"github.com/m04kA/SMC-ResortService/internal/service/houses/models"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
	"github.com/m04kA/SMC-ResortService/pkg/ptr"
)

type houseRepoMock struct{ mock.Mock }

func (m *houseRepoMock) Create(ctx context.Context, h *domain.House) (*domain.House, error) {
	args := m.Called(ctx, h)
	res, _ := args.Get(0).(*domain.House)
	return res, args.Error(1)
}

func (m *houseRepoMock) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.House)
	return res, args.Error(1)
}

func (m *houseRepoMock) List(ctx context.Context, onlyActive bool) ([]*domain.House, error) {
	args := m.Called(ctx, onlyActive)
	res, _ := args.Get(0).([]*domain.House)
	return res, args.Error(1)
}

func (m *houseRepoMock) Update(ctx context.Context, h *domain.House) error {
	return m.Called(ctx, h).Error(0)
}

func (m *houseRepoMock) SetImage(ctx context.Context, id int64, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *houseRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type uploaderMock struct{ mock.Mock }

func (m *uploaderMock) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, r, size, contentType)
	return args.String(0), args.Error(1)
}

func newService() (*Service, *houseRepoMock, *uploaderMock) {
	repo := &houseRepoMock{}
	up := &uploaderMock{}
	return NewService(repo, up, 1.25, logger.Nop()), repo, up
}

func TestService_List_EffectiveWeekendRate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	repo.On("List", ctx, true).Return([]*domain.House{
		{ID: 1, Name: "A", Capacity: 2, BaseRate: 100, IsActive: true},
		{ID: 2, Name: "B", Capacity: 4, BaseRate: 200, WeekendMultiplier: ptr.Ptr(1.5), IsActive: true},
	}, nil)

	resp, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, resp.Houses, 2)

	assert.InDelta(t, 125.0, resp.Houses[0].WeekendRate, 0.001)
	assert.InDelta(t, 1.25, resp.Houses[0].WeekendMultiplier, 0.001)
	assert.InDelta(t, 300.0, resp.Houses[1].WeekendRate, 0.001)
	assert.NotNil(t, resp.Houses[0].Amenities)
}

func TestService_GetByID_HidesInactive(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()
	repo.On("GetByID", ctx, int64(3)).Return(&domain.House{ID: 3, Name: "Closed", Capacity: 2, BaseRate: 50}, nil)

	_, err := svc.GetByID(ctx, 3, false)
	assert.ErrorIs(t, err, ErrHouseNotFound)

	resp, err := svc.GetByID(ctx, 3, true)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active", func(t *testing.T) {
		svc, repo, _ := newService()
		repo.On("Create", ctx, mock.MatchedBy(func(h *domain.House) bool {
			return h.IsActive && h.Name == "Pine"
		})).Return(&domain.House{ID: 7, Name: "Pine", Capacity: 3, BaseRate: 90, IsActive: true}, nil)

		resp, err := svc.Create(ctx, &models.HouseRequest{Name: " Pine ", Capacity: 3, BaseRate: 90})
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
	})

	tests := []struct {
		name string
		req  models.HouseRequest
	}{
		{name: "no name", req: models.HouseRequest{Capacity: 2, BaseRate: 10}},
		{name: "zero capacity", req: models.HouseRequest{Name: "A", BaseRate: 10}},
		{name: "huge capacity", req: models.HouseRequest{Name: "A", Capacity: 50, BaseRate: 10}},
		{name: "free", req: models.HouseRequest{Name: "A", Capacity: 2}},
		{name: "bad multiplier", req: models.HouseRequest{Name: "A", Capacity: 2, BaseRate: 10, WeekendMultiplier: ptr.Ptr(-1.0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService()
			_, err := svc.Create(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_Partial(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.House{ID: 1, Name: "Lake", Capacity: 4, BaseRate: 100, IsActive: true}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(h *domain.House) bool {
		return h.Name == "Lake" && h.BaseRate == 150 && !h.IsActive
	})).Return(nil)

	resp, err := svc.Update(ctx, 1, &models.UpdateHouseRequest{BaseRate: ptr.Ptr(150.0), IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.InDelta(t, 150.0, resp.BaseRate, 0.001)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newService()

	repo.On("Delete", ctx, int64(1)).Return(houseRepo.ErrHouseInUse)
	repo.On("Delete", ctx, int64(2)).Return(houseRepo.ErrHouseNotFound)
	repo.On("Delete", ctx, int64(3)).Return(nil)

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrHouseHasBookings)
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrHouseNotFound)
	assert.NoError(t, svc.Delete(ctx, 3))
}

func TestService_UploadImage(t *testing.T) {
	ctx := context.Background()
	body := bytes.NewReader([]byte("png-bytes"))

	t.Run("stores url", func(t *testing.T) {
		svc, repo, up := newService()
		repo.On("GetByID", ctx, int64(1)).Return(&domain.House{ID: 1, Name: "Lake", Capacity: 4, BaseRate: 100}, nil)
		up.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "houses/1/") && strings.HasSuffix(key, ".png")
		}), body, int64(9), "image/png").Return("http://cdn/resort/houses/1/x.png", nil)
		repo.On("SetImage", ctx, int64(1), "http://cdn/resort/houses/1/x.png").Return(nil)

		resp, err := svc.UploadImage(ctx, &models.UploadImageRequest{HouseID: 1, ContentType: "image/png", Size: 9}, body)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/resort/houses/1/x.png", *resp.ImageURL)
	})

	t.Run("unsupported type", func(t *testing.T) {
		svc, _, _ := newService()
		_, err := svc.UploadImage(ctx, &models.UploadImageRequest{HouseID: 1, ContentType: "text/plain", Size: 9}, body)
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("storage disabled", func(t *testing.T) {
		repo := &houseRepoMock{}
		repo.On("GetByID", ctx, int64(1)).Return(&domain.House{ID: 1}, nil)
		svc := NewService(repo, imagestore.NoopUploader{}, 1.25, logger.Nop())

		_, err := svc.UploadImage(ctx, &models.UploadImageRequest{HouseID: 1, ContentType: "image/jpeg", Size: 9}, body)
		assert.ErrorIs(t, err, ErrStorageNotConfigured)
	})
}
