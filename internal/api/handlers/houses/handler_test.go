package houses

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/service/houses"
	"github.com/m04kA/SMC-ResortService/internal/service/houses/models"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) List(ctx context.Context, onlyActive bool) (*models.HouseListResponse, error) {
	args := m.Called(ctx, onlyActive)
	res, _ := args.Get(0).(*models.HouseListResponse)
	return res, args.Error(1)
}

func (m *serviceMock) GetByID(ctx context.Context, id int64, includeInactive bool) (*models.HouseResponse, error) {
	args := m.Called(ctx, id, includeInactive)
	res, _ := args.Get(0).(*models.HouseResponse)
	return res, args.Error(1)
}

func (m *serviceMock) Create(ctx context.Context, req *models.HouseRequest) (*models.HouseResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.HouseResponse)
	return res, args.Error(1)
}

func (m *serviceMock) Update(ctx context.Context, id int64, req *models.UpdateHouseRequest) (*models.HouseResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*models.HouseResponse)
	return res, args.Error(1)
}

func (m *serviceMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *serviceMock) UploadImage(ctx context.Context, req *models.UploadImageRequest, body io.Reader) (*models.HouseResponse, error) {
	args := m.Called(ctx, req, body)
	res, _ := args.Get(0).(*models.HouseResponse)
	return res, args.Error(1)
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"houseId": id})
}

func TestHandler_Get(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.Nop())

	svc.On("GetByID", mock.Anything, int64(1), false).Return(&models.HouseResponse{ID: 1, Name: "Лесной"}, nil)
	svc.On("GetByID", mock.Anything, int64(2), false).Return(nil, houses.ErrHouseNotFound)

	rec := httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/houses/1", nil), "1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Лесной")

	rec = httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/houses/2", nil), "2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	svc := &serviceMock{}
	h := NewHandler(svc, logger.Nop())

	t.Run("created", func(t *testing.T) {
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.HouseRequest) bool {
			return r.Name == "Озерный" && r.Capacity == 4
		})).Return(&models.HouseResponse{ID: 5, Name: "Озерный"}, nil).Once()

		body := `{"name":"Озерный","capacity":4,"baseRate":5000,"amenities":["sauna"]}`
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/houses", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation", func(t *testing.T) {
		body := `{"name":"","capacity":0,"baseRate":0}`
		rec := httptest.NewRecorder()
		h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/houses", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Delete_HasBookings(t *testing.T) {
	svc := &serviceMock{}
	svc.On("Delete", mock.Anything, int64(3)).Return(fmt.Errorf("%w: 2 active", houses.ErrHouseHasBookings))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/houses/3", nil), "3"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func multipartImage(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="house.png"`, field))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestHandler_UploadImage(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		svc := &serviceMock{}
		url := "http://cdn/houses/3/a.png"
		svc.On("UploadImage", mock.Anything, &models.UploadImageRequest{
			HouseID: 3, FileName: "house.png", ContentType: "image/png", Size: 4,
		}, mock.Anything).Return(&models.HouseResponse{ID: 3, ImageURL: &url}, nil)

		body, ct := multipartImage(t, "image", "image/png", []byte("\x89PNG"))
		req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/admin/houses/3/image", body), "3")
		req.Header.Set("Content-Type", ct)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).UploadImage(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), url)
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("UploadImage", mock.Anything, mock.Anything, mock.Anything).Return(nil, houses.ErrStorageNotConfigured)

		body, ct := multipartImage(t, "image", "image/png", []byte("\x89PNG"))
		req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/admin/houses/3/image", body), "3")
		req.Header.Set("Content-Type", ct)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).UploadImage(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("wrong field", func(t *testing.T) {
		body, ct := multipartImage(t, "file", "image/png", []byte("\x89PNG"))
		req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/admin/houses/3/image", body), "3")
		req.Header.Set("Content-Type", ct)

		rec := httptest.NewRecorder()
		NewHandler(&serviceMock{}, logger.Nop()).UploadImage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
