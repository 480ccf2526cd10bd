package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResortService/internal/api/handlers"
	"github.com/m04kA/SMC-ResortService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ResortService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDatesNotAvailable  = "дом уже забронирован на выбранные даты"
	msgHouseNotFound      = "дом не найден"
	msgHouseInactive      = "дом недоступен для бронирования"
	msgTooManyGuests      = "количество гостей превышает вместимость дома"
	msgInvalidDates       = "дата выезда должна быть позже даты заезда"
	msgDateInPast         = "дата заезда уже прошла"
	msgStayTooLong        = "превышена максимальная длительность проживания"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// X-User-ID необязателен: гость может бронировать без аккаунта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(middleware.OptionalUserID(r.Context()))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: house_id=%d, %s..%s", req.HouseID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrHouseNotFound):
			h.logger.Warn("POST /bookings - House not found: house_id=%d", req.HouseID)
			handlers.RespondNotFound(w, msgHouseNotFound)

		case errors.Is(err, createBooking.ErrHouseInactive):
			h.logger.Warn("POST /bookings - House inactive: house_id=%d", req.HouseID)
			handlers.RespondBadRequest(w, msgHouseInactive)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: house_id=%d, guests=%d", req.HouseID, req.Guests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: house_id=%d, error=%v", req.HouseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, house_id=%d, total=%.2f",
		result.ID, result.HouseID, result.Quote.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
