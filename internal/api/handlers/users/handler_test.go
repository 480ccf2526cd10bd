package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/service/users"
	"github.com/m04kA/SMC-ResortService/internal/service/users/models"
	"github.com/m04kA/SMC-ResortService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
	UserService
}

func (m *serviceMock) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.UserResponse)
	return res, args.Error(1)
}

func (m *serviceMock) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.UserResponse)
	return res, args.Error(1)
}

func (m *serviceMock) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*models.UserResponse)
	return res, args.Error(1)
}

func (m *serviceMock) UpdateRole(ctx context.Context, id int64, req *models.UpdateRoleRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func TestHandler_Register(t *testing.T) {
	body := `{"email":"guest@example.com","password":"secret123","name":"Гость"}`

	t.Run("created without password hash in response", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("Register", mock.Anything, mock.Anything).Return(&models.UserResponse{ID: 1, Email: "guest@example.com", Role: "guest"}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotContains(t, resp, "passwordHash")
		assert.Equal(t, "guest", resp["role"])
	})

	t.Run("email taken", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, users.ErrEmailAlreadyRegistered)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(body)))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password", func(t *testing.T) {
		svc := &serviceMock{}
		short := `{"email":"guest@example.com","password":"123","name":"Гость"}`

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.Nop()).Register(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(short)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &serviceMock{}
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, users.ErrInvalidCredentials)

	body := `{"email":"guest@example.com","password":"wrong-password"}`
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Profile(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetByID", mock.Anything, int64(3)).Return(&models.UserResponse{ID: 3}, nil)
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Profile(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 3))
	rec = httptest.NewRecorder()
	h.Profile(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UpdateRole(t *testing.T) {
	svc := &serviceMock{}
	svc.On("UpdateRole", mock.Anything, int64(5), &models.UpdateRoleRequest{Role: "admin"}).Return(nil)
	h := NewHandler(svc, logger.Nop())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/5/role", strings.NewReader(`{"role":"admin"}`))
	req = mux.SetURLVars(req, map[string]string{"userId": "5"})
	rec := httptest.NewRecorder()
	h.UpdateRole(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/5/role", strings.NewReader(`{"role":"owner"}`))
	req = mux.SetURLVars(req, map[string]string{"userId": "5"})
	rec = httptest.NewRecorder()
	h.UpdateRole(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "UpdateRole", 1)
}
