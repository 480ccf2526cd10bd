package events

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/service/events"
	"github.com/m04kA/SMC-ResortService/internal/service/events/models"
)

const (
	msgInvalidEventID      = "некорректный ID мероприятия"
	msgInvalidID           = "некорректный ID"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgEventNotFound       = "мероприятие не найдено"
	msgReservationNotFound = "запись не найдена"
	msgEventStarted        = "мероприятие уже началось"
	msgNotEnoughSeats      = "недостаточно свободных мест"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListUpcoming GET /api/v1/events
func (h *Handler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /events - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListAll GET /api/v1/admin/events
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/events - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/events/{eventId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, false)
}

// GetAdmin GET /api/v1/admin/events/{eventId} (включая неопубликованные)
func (h *Handler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, true)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, includeUnpublished bool) {
	eventID, err := handlers.PathInt64(r, "eventId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.GetByID(r.Context(), eventID, includeUnpublished)
	if err != nil {
		h.respondError(w, "GET /events/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Reserve POST /api/v1/events/{eventId}/reservations
// X-User-ID необязателен
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathInt64(r, "eventId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.ReserveRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = middleware.OptionalUserID(r.Context())

	result, err := h.service.Reserve(r.Context(), eventID, &req)
	if err != nil {
		h.respondError(w, "POST /events/{id}/reservations", err)
		return
	}

	h.logger.Info("POST /events/{id}/reservations - Reservation created: event_id=%d, reservation_id=%d, seats=%d",
		eventID, result.ID, req.Seats)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Create POST /api/v1/admin/events
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/events", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/admin/events/{eventId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathInt64(r, "eventId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.EventRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/events/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/events/{eventId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathInt64(r, "eventId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		h.respondError(w, "DELETE /admin/events/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// ListReservations GET /api/v1/admin/events/{eventId}/reservations
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathInt64(r, "eventId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.ListReservations(r.Context(), eventID)
	if err != nil {
		h.respondError(w, "GET /admin/events/{id}/reservations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateReservationStatus PATCH /api/v1/admin/event-reservations/{id}/status
func (h *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateReservationStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateReservationStatus(r.Context(), id, &req); err != nil {
		h.respondError(w, "PATCH /admin/event-reservations/{id}/status", err)
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
	case errors.Is(err, events.ErrEventNotFound):
		handlers.RespondNotFound(w, msgEventNotFound)

	case errors.Is(err, events.ErrReservationNotFound):
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, events.ErrEventStarted):
		handlers.RespondBadRequest(w, msgEventStarted)

	case errors.Is(err, events.ErrNotEnoughSeats):
		h.logger.Warn("%s - Not enough seats", route)
		handlers.RespondConflict(w, msgNotEnoughSeats)

	case errors.Is(err, events.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
