package users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/service/users"
	"github.com/m04kA/SMC-ResortService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPagination  = "некорректные параметры limit/offset"
	msgUnauthorized       = "требуется авторизация"
	msgUserNotFound       = "пользователь не найден"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/register", err)
		return
	}

	h.logger.Info("POST /users/register - User registered: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Login POST /api/v1/users/login
// Возвращает профиль; выдача токена на стороне gateway
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/login", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Profile GET /api/v1/users/me
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		h.respondError(w, "GET /users/me", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/admin/users?limit=50&offset=0
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryUint64(r, "limit")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}
	offset, err := handlers.QueryUint64(r, "offset")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListUsersRequest{Limit: limit, Offset: offset})
	if err != nil {
		h.respondError(w, "GET /admin/users", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateRole PATCH /api/v1/admin/users/{userId}/role
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateRoleRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateRole(r.Context(), userID, &req); err != nil {
		h.respondError(w, "PATCH /admin/users/{id}/role", err)
		return
	}

	h.logger.Info("PATCH /admin/users/{id}/role - Role updated: user_id=%d, role=%s", userID, req.Role)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Delete DELETE /api/v1/admin/users/{userId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		h.respondError(w, "DELETE /admin/users/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s %s - Invalid request body: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	if err := handlers.ValidateStruct(v); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, users.ErrEmailAlreadyRegistered):
		handlers.RespondConflict(w, msgEmailTaken)

	case errors.Is(err, users.ErrInvalidCredentials):
		h.logger.Warn("%s - Invalid credentials", route)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)

	case errors.Is(err, users.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
