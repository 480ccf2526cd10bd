package get_house_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	getHouseCalendar "github.com/m04kA/SMC-ResortService/internal/usecase/get_house_calendar"
)

const (
	msgInvalidHouseID = "некорректный ID дома"
	msgInvalidMonth   = "некорректный месяц, ожидается YYYY-MM"
	msgHouseNotFound  = "дом не найден"
)

type Handler struct {
	useCase GetHouseCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetHouseCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/houses/{houseId}/calendar
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	houseID, err := handlers.PathInt64(r, "houseId")
	if err != nil {
		h.logger.Warn("GET /houses/{id}/calendar - Invalid house ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHouseID)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getHouseCalendar.Request{HouseID: houseID, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getHouseCalendar.ErrHouseNotFound):
			h.logger.Warn("GET /houses/{id}/calendar - House not found: house_id=%d", houseID)
			handlers.RespondNotFound(w, msgHouseNotFound)

		case errors.Is(err, getHouseCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /houses/{id}/calendar - Invalid month: %s", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /houses/{id}/calendar - Failed to build calendar: house_id=%d, error=%v",
				houseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /houses/{id}/calendar - Calendar built: house_id=%d, month=%s", houseID, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
