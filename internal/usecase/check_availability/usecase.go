package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
)

// UseCase проверка доступности дома на интервал [checkIn, checkOut) с расчетом стоимости
type UseCase struct {
	houseRepo    HouseRepository
	bookingRepo  BookingRepository
	metrics      MetricsRecorder
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	houseRepo HouseRepository,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		houseRepo:    houseRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: house=%d, check_in=%s, check_out=%s, guests=%d",
		req.HouseID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	if req.HouseID <= 0 {
		return nil, fmt.Errorf("%w: houseID must be positive", ErrInvalidInput)
	}
	if req.Guests < 0 {
		return nil, fmt.Errorf("%w: guests must not be negative", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}

	resp := &Response{
		HouseID:  req.HouseID,
		CheckIn:  domain.DateOnly(req.CheckIn),
		CheckOut: domain.DateOnly(req.CheckOut),
	}

	house, err := uc.houseRepo.GetByID(ctx, req.HouseID)
	if err != nil {
		if errors.Is(err, houseRepo.ErrHouseNotFound) {
			uc.logger.Warn("CheckAvailability: house id=%d not found", req.HouseID)
			return nil, ErrHouseNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get house id=%d: %v", req.HouseID, err)
		return nil, fmt.Errorf("%w: failed to get house: %v", ErrInternal, err)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return uc.unavailable(resp, ReasonEmptyStay), nil
	}
	resp.Nights = stay.Nights()

	if reason := stayReason(uc.policy.CheckStay(stay, uc.timeProvider.Now())); reason != "" {
		return uc.unavailable(resp, reason), nil
	}
	if !house.IsActive {
		return uc.unavailable(resp, ReasonHouseInactive), nil
	}
	if req.Guests > 0 && !house.Fits(req.Guests) {
		return uc.unavailable(resp, ReasonCapacity), nil
	}

	bookings, err := uc.bookingRepo.GetActiveByHouse(ctx, house.ID, stay.CheckIn, stay.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for house id=%d: %v", house.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if !domain.IsRangeAvailable(ranges(bookings), stay) {
		uc.logger.Info("CheckAvailability: house id=%d is booked for requested dates", house.ID)
		return uc.unavailable(resp, ReasonBooked), nil
	}

	quote := house.PriceRule(uc.policy.WeekendMultiplier).Quote(stay)
	resp.Available = true
	resp.Quote = &quote
	uc.metrics.AvailabilityChecked(true)

	uc.logger.Info("CheckAvailability: house id=%d available, nights=%d, total=%.2f", house.ID, stay.Nights(), quote.Total)
	return resp, nil
}

func (uc *UseCase) unavailable(resp *Response, reason string) *Response {
	resp.Available = false
	resp.Reason = reason
	uc.metrics.AvailabilityChecked(false)
	return resp
}

// stayReason переводит ошибку политики бронирования в причину недоступности
func stayReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyStay):
		return ReasonEmptyStay
	case errors.Is(err, domain.ErrCheckInInPast):
		return ReasonPast
	case errors.Is(err, domain.ErrStayTooLong):
		return ReasonTooLong
	case errors.Is(err, domain.ErrTooFarInFuture):
		return ReasonTooFarAhead
	default:
		return ReasonBooked
	}
}

func ranges(bookings []*domain.Booking) []domain.DateRange {
	result := make([]domain.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			result = append(result, b.Range())
		}
	}
	return result
}
