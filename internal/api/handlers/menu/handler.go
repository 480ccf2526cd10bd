package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/service/menu"
	"github.com/m04kA/SMC-ResortService/internal/service/menu/models"
)

const (
	msgInvalidID          = "некорректный ID"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCategoryNotFound   = "категория меню не найдена"
	msgItemNotFound       = "позиция меню не найдена"
	msgCategoryNotEmpty   = "в категории есть позиции"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetMenu GET /api/v1/menu
// Категории по порядку, в каждой только доступные позиции
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetMenu(r.Context())
	if err != nil {
		h.logger.Error("GET /menu - Failed to build menu: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListCategories GET /api/v1/admin/menu/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/menu/categories - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateCategory POST /api/v1/admin/menu/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/menu/categories", err)
		return
	}

	h.logger.Info("POST /admin/menu/categories - Category created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateCategory PUT /api/v1/admin/menu/categories/{id}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/menu/categories/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteCategory DELETE /api/v1/admin/menu/categories/{id}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/menu/categories/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// ListItems GET /api/v1/admin/menu/items
// Query params: categoryId (опционально)
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		categoryID = &id
	}

	result, err := h.service.ListItems(r.Context(), categoryID)
	if err != nil {
		h.respondError(w, "GET /admin/menu/items", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateItem POST /api/v1/admin/menu/items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/menu/items", err)
		return
	}

	h.logger.Info("POST /admin/menu/items - Item created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateItem PUT /api/v1/admin/menu/items/{id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.ItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/menu/items/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteItem DELETE /api/v1/admin/menu/items/{id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/menu/items/{id}", err)
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
	case errors.Is(err, menu.ErrCategoryNotFound):
		handlers.RespondNotFound(w, msgCategoryNotFound)

	case errors.Is(err, menu.ErrItemNotFound):
		handlers.RespondNotFound(w, msgItemNotFound)

	case errors.Is(err, menu.ErrCategoryNotEmpty):
		h.logger.Warn("%s - Category not empty", route)
		handlers.RespondConflict(w, msgCategoryNotEmpty)

	case errors.Is(err, menu.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
