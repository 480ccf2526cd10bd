package get_available_houses

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// UseCase поиск свободных домов под количество гостей
type UseCase struct {
	houseRepo    HouseRepository
	bookingRepo  BookingRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(houseRepo HouseRepository, bookingRepo BookingRepository, policy domain.BookingPolicy, logger Logger) *UseCase {
	return &UseCase{
		houseRepo:    houseRepo,
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableHouses: check_in=%s, check_out=%s, guests=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxHouseGuests {
		return nil, fmt.Errorf("%w: guests must be in %d..%d", ErrInvalidInput, domain.MinGuests, domain.MaxHouseGuests)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStay, err)
	}
	if stay.Nights() > domain.MaxAvailabilityWindow {
		uc.logger.Warn("GetAvailableHouses: window of %d nights exceeds %d", stay.Nights(), domain.MaxAvailabilityWindow)
		return nil, fmt.Errorf("%w: search window must be at most %d nights", ErrInvalidStay, domain.MaxAvailabilityWindow)
	}
	if err := uc.policy.CheckStay(stay, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableHouses: stay rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStay, err)
	}

	houses, err := uc.houseRepo.ListAvailable(ctx, req.Guests)
	if err != nil {
		uc.logger.Error("GetAvailableHouses: failed to list houses: %v", err)
		return nil, fmt.Errorf("%w: failed to list houses: %v", ErrInternal, err)
	}

	resp := &Response{
		CheckIn:  stay.CheckIn,
		CheckOut: stay.CheckOut,
		Nights:   stay.Nights(),
		Houses:   make([]AvailableHouse, 0, len(houses)),
	}
	if len(houses) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(houses))
	for _, h := range houses {
		ids = append(ids, h.ID)
	}

	bookings, err := uc.bookingRepo.GetActiveByHouses(ctx, ids, stay.CheckIn, stay.CheckOut)
	if err != nil {
		uc.logger.Error("GetAvailableHouses: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make(map[int64][]domain.DateRange, len(houses))
	for _, b := range bookings {
		if b.IsActive() {
			booked[b.HouseID] = append(booked[b.HouseID], b.Range())
		}
	}

	for _, h := range houses {
		if !h.Fits(req.Guests) || !domain.IsRangeAvailable(booked[h.ID], stay) {
			continue
		}
		resp.Houses = append(resp.Houses, AvailableHouse{
			House: h,
			Quote: h.PriceRule(uc.policy.WeekendMultiplier).Quote(stay),
		})
	}

	uc.logger.Info("GetAvailableHouses: %d of %d houses available", len(resp.Houses), len(houses))
	return resp, nil
}
