package get_available_houses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	getAvailableHouses "github.com/m04kA/SMC-ResortService/internal/usecase/get_available_houses"
)

const (
	msgMissingDates  = "даты заезда и выезда обязательны"
	msgInvalidParams = "некорректные параметры: ожидаются даты YYYY-MM-DD и число гостей"
	msgInvalidStay   = "интервал проживания не соответствует правилам бронирования"
)

type Handler struct {
	useCase GetAvailableHousesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableHousesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/houses/available
// Query params: checkIn, checkOut (required, YYYY-MM-DD), guests (опционально, по умолчанию 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	checkIn, checkOut := query.Get("checkIn"), query.Get("checkOut")
	if checkIn == "" || checkOut == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(checkIn, checkOut, query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /houses/available - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableHouses.ErrInvalidStay):
			h.logger.Warn("GET /houses/available - Invalid stay: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, getAvailableHouses.ErrInvalidInput):
			h.logger.Warn("GET /houses/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /houses/available - Failed to search houses: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /houses/available - %s..%s, guests=%d, found=%d",
		checkIn, checkOut, useCaseReq.Guests, len(result.Houses))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
