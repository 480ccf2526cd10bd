package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ResortService/internal/usecase/check_availability"
)

const (
	msgInvalidHouseID = "некорректный ID дома"
	msgMissingDates   = "даты заезда и выезда обязательны"
	msgInvalidParams  = "некорректные параметры: ожидаются даты YYYY-MM-DD и число гостей"
	msgHouseNotFound  = "дом не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/houses/{houseId}/availability
// Query params: checkIn, checkOut (required, YYYY-MM-DD), guests (опционально)
// Недоступный интервал - это 200 с available=false и причиной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		h.logger.Warn("GET /houses/{id}/availability - Invalid house ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	query := r.URL.Query()
	checkIn, checkOut := query.Get("checkIn"), query.Get("checkOut")
	if checkIn == "" || checkOut == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(houseID, checkIn, checkOut, query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /houses/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrHouseNotFound):
			h.logger.Warn("GET /houses/{id}/availability - House not found: house_id=%d", houseID)
			handlers.RespondNotFound(w, msgHouseNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /houses/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /houses/{id}/availability - Failed to check availability: house_id=%d, error=%v",
				houseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /houses/{id}/availability - house_id=%d, %s..%s, available=%t",
		houseID, checkIn, checkOut, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
