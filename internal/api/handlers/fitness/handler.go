package fitness

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	"github.com/m04kA/SMC-ResortService/internal/service/fitness"
	"github.com/m04kA/SMC-ResortService/internal/service/fitness/models"
)

const (
	msgInvalidCourseID      = "некорректный ID курса"
	msgInvalidID            = "некорректный ID"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgCourseNotFound       = "курс не найден"
	msgRegistrationNotFound = "запись на курс не найдена"
	msgMembershipNotFound   = "абонемент не найден"
	msgCourseFull           = "на курсе нет свободных мест"
	msgCourseInactive       = "запись на курс закрыта"
	msgStartDateInPast      = "дата начала абонемента не может быть в прошлом"
)

type Handler struct {
	service FitnessService
	logger  Logger
}

func NewHandler(service FitnessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListCourses GET /api/v1/fitness/courses
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.listCourses(w, r, true)
}

// ListAllCourses GET /api/v1/admin/fitness/courses
func (h *Handler) ListAllCourses(w http.ResponseWriter, r *http.Request) {
	h.listCourses(w, r, false)
}

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request, onlyActive bool) {
	result, err := h.service.ListCourses(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET %s - Failed: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetCourse GET /api/v1/fitness/courses/{courseId}
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	h.getCourse(w, r, false)
}

// GetCourseAdmin GET /api/v1/admin/fitness/courses/{courseId}
func (h *Handler) GetCourseAdmin(w http.ResponseWriter, r *http.Request) {
	h.getCourse(w, r, true)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	courseID, err := handlers.PathInt64(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	result, err := h.service.GetCourse(r.Context(), courseID, includeInactive)
	if err != nil {
		h.respondError(w, "GET /fitness/courses/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Register POST /api/v1/fitness/courses/{courseId}/registrations
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathInt64(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	var req models.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = middleware.OptionalUserID(r.Context())

	result, err := h.service.Register(r.Context(), courseID, &req)
	if err != nil {
		h.respondError(w, "POST /fitness/courses/{id}/registrations", err)
		return
	}

	h.logger.Info("POST /fitness/courses/{id}/registrations - Registered: course_id=%d, registration_id=%d", courseID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// CreateMembership POST /api/v1/fitness/memberships
func (h *Handler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	var req models.MembershipRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.UserID = middleware.OptionalUserID(r.Context())

	result, err := h.service.CreateMembership(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /fitness/memberships", err)
		return
	}

	h.logger.Info("POST /fitness/memberships - Membership created: id=%d, plan=%s", result.ID, req.Plan)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// CreateCourse POST /api/v1/admin/fitness/courses
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CourseRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/fitness/courses", err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateCourse PUT /api/v1/admin/fitness/courses/{courseId}
func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathInt64(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	var req models.CourseRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.UpdateCourse(r.Context(), courseID, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/fitness/courses/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteCourse DELETE /api/v1/admin/fitness/courses/{courseId}
func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathInt64(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		h.respondError(w, "DELETE /admin/fitness/courses/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// ListRegistrations GET /api/v1/admin/fitness/courses/{courseId}/registrations
func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathInt64(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	result, err := h.service.ListRegistrations(r.Context(), courseID)
	if err != nil {
		h.respondError(w, "GET /admin/fitness/courses/{id}/registrations", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateRegistrationStatus PATCH /api/v1/admin/fitness/registrations/{id}/status
func (h *Handler) UpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateRegistrationStatus(r.Context(), id, &req); err != nil {
		h.respondError(w, "PATCH /admin/fitness/registrations/{id}/status", err)
		return
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// ListMemberships GET /api/v1/admin/fitness/memberships?status=active
func (h *Handler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMemberships(r.Context(), handlers.QueryString(r, "status"))
	if err != nil {
		h.respondError(w, "GET /admin/fitness/memberships", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateMembershipStatus PATCH /api/v1/admin/fitness/memberships/{id}/status
func (h *Handler) UpdateMembershipStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.UpdateMembershipStatus(r.Context(), id, &req); err != nil {
		h.respondError(w, "PATCH /admin/fitness/memberships/{id}/status", err)
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
	case errors.Is(err, fitness.ErrCourseNotFound):
		handlers.RespondNotFound(w, msgCourseNotFound)

	case errors.Is(err, fitness.ErrRegistrationNotFound):
		handlers.RespondNotFound(w, msgRegistrationNotFound)

	case errors.Is(err, fitness.ErrMembershipNotFound):
		handlers.RespondNotFound(w, msgMembershipNotFound)

	case errors.Is(err, fitness.ErrCourseFull):
		h.logger.Warn("%s - Course is full", route)
		handlers.RespondConflict(w, msgCourseFull)

	case errors.Is(err, fitness.ErrCourseInactive):
		handlers.RespondBadRequest(w, msgCourseInactive)

	case errors.Is(err, fitness.ErrStartDateInPast):
		handlers.RespondBadRequest(w, msgStartDateInPast)

	case errors.Is(err, fitness.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
