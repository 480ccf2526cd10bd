package houses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/service/houses"
	"github.com/m04kA/SMC-ResortService/internal/service/houses/models"
)

const (
	msgInvalidHouseID     = "некорректный ID дома"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHouseNotFound      = "дом не найден"
	msgHouseHasBookings   = "у дома есть активные бронирования"
	msgInvalidImage       = "ожидается файл image (jpeg, png или webp, до 10 МБ)"
	msgStorageDisabled    = "загрузка изображений не настроена"

	// maxUploadMemory часть multipart формы, которая держится в памяти
	maxUploadMemory = 10 << 20
)

type Handler struct {
	service HouseService
	logger  Logger
}

func NewHandler(service HouseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/houses
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll GET /api/v1/admin/houses (включая снятые с бронирования)
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, onlyActive bool) {
	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /houses - Failed to list houses: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result.Houses)
}

// Get GET /api/v1/houses/{houseId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, false)
}

// GetAdmin GET /api/v1/admin/houses/{houseId}
func (h *Handler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, true)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	house, err := h.service.GetByID(r.Context(), houseID, includeInactive)
	if err != nil {
		h.respondError(w, "GET /houses/{id}", houseID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, house)
}

// Create POST /api/v1/admin/houses
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.HouseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/houses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	house, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/houses", 0, err)
		return
	}

	h.logger.Info("POST /admin/houses - House created: house_id=%d", house.ID)
	handlers.RespondJSON(w, http.StatusCreated, house)
}

// Update PATCH /api/v1/admin/houses/{houseId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	var req models.UpdateHouseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/houses/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	house, err := h.service.Update(r.Context(), houseID, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/houses/{id}", houseID, err)
		return
	}

	h.logger.Info("PATCH /admin/houses/{id} - House updated: house_id=%d", houseID)
	handlers.RespondJSON(w, http.StatusOK, house)
}

// Delete DELETE /api/v1/admin/houses/{houseId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	if err := h.service.Delete(r.Context(), houseID); err != nil {
		h.respondError(w, "DELETE /admin/houses/{id}", houseID, err)
		return
	}

	h.logger.Info("DELETE /admin/houses/{id} - House deleted: house_id=%d", houseID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// UploadImage POST /api/v1/admin/houses/{houseId}/image
// multipart/form-data, поле image
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Warn("POST /admin/houses/{id}/image - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /admin/houses/{id}/image - Missing image field: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}
	defer file.Close()

	req := &models.UploadImageRequest{
		HouseID:     houseID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	house, err := h.service.UploadImage(r.Context(), req, file)
	if err != nil {
		h.respondError(w, "POST /admin/houses/{id}/image", houseID, err)
		return
	}

	h.logger.Info("POST /admin/houses/{id}/image - Image uploaded: house_id=%d", houseID)
	handlers.RespondJSON(w, http.StatusOK, house)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, houseID int64, err error) {
	switch {
	case errors.Is(err, houses.ErrHouseNotFound):
		h.logger.Warn("%s - House not found: house_id=%d", route, houseID)
		handlers.RespondNotFound(w, msgHouseNotFound)

	case errors.Is(err, houses.ErrHouseHasBookings):
		h.logger.Warn("%s - House has bookings: house_id=%d", route, houseID)
		handlers.RespondConflict(w, msgHouseHasBookings)

	case errors.Is(err, houses.ErrUnsupportedImage):
		handlers.RespondBadRequest(w, msgInvalidImage)

	case errors.Is(err, houses.ErrStorageNotConfigured):
		h.logger.Warn("%s - Object storage is not configured", route)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageDisabled)

	case errors.Is(err, houses.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: house_id=%d, error=%v", route, houseID, err)
		handlers.RespondInternalError(w)
	}
}
