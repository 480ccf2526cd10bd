package table_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/service/reservations"
	"github.com/m04kA/SMC-ResortService/internal/service/reservations/models"
)

const (
	msgInvalidID           = "некорректный ID брони"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidPagination   = "некорректные параметры limit/offset"
	msgReservationNotFound = "бронь не найдена"
	msgDateInPast          = "нельзя забронировать столик на прошедшую дату"
	msgFullyBooked         = "на выбранную дату нет свободных мест"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/table-reservations
// X-User-ID необязателен
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /table-reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	req.UserID = middleware.OptionalUserID(r.Context())

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /table-reservations", err)
		return
	}

	h.logger.Info("POST /table-reservations - Reservation created: id=%d, date=%s, guests=%d", result.ID, req.Date, req.Guests)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/admin/table-reservations?date=2025-10-15&status=pending&limit=50&offset=0
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

	req := &models.ListReservationsRequest{
		Date:   handlers.QueryString(r, "date"),
		Status: handlers.QueryString(r, "status"),
		Limit:  limit,
		Offset: offset,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/table-reservations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/admin/table-reservations/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/table-reservations/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/admin/table-reservations/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, &req); err != nil {
		h.respondError(w, "PATCH /admin/table-reservations/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /admin/table-reservations/{id}/status - Status updated: id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Delete DELETE /api/v1/admin/table-reservations/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/table-reservations/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reservations.ErrReservationNotFound):
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservations.ErrDateInPast):
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, reservations.ErrFullyBooked):
		h.logger.Warn("%s - Fully booked", route)
		handlers.RespondConflict(w, msgFullyBooked)

	case errors.Is(err, reservations.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
