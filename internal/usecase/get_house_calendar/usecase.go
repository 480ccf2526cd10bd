package get_house_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
)

// UseCase календарь занятости дома с ценой каждой ночи
type UseCase struct {
	houseRepo         HouseRepository
	bookingRepo       BookingRepository
	weekendMultiplier float64
	logger            Logger
}

func NewUseCase(houseRepo HouseRepository, bookingRepo BookingRepository, weekendMultiplier float64, logger Logger) *UseCase {
	return &UseCase{
		houseRepo:         houseRepo,
		bookingRepo:       bookingRepo,
		weekendMultiplier: weekendMultiplier,
		logger:            logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetHouseCalendar: house=%d, month=%s", req.HouseID, req.Month)

	month, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}
	from := domain.DateOnly(month)
	to := from.AddDate(0, 1, 0)

	house, err := uc.houseRepo.GetByID(ctx, req.HouseID)
	if err != nil {
		if errors.Is(err, houseRepo.ErrHouseNotFound) {
			uc.logger.Warn("GetHouseCalendar: house id=%d not found", req.HouseID)
			return nil, ErrHouseNotFound
		}
		uc.logger.Error("GetHouseCalendar: failed to get house id=%d: %v", req.HouseID, err)
		return nil, fmt.Errorf("%w: failed to get house: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetActiveByHouse(ctx, house.ID, from, to)
	if err != nil {
		uc.logger.Error("GetHouseCalendar: failed to get bookings for house id=%d: %v", house.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make([]domain.DateRange, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.Range())
	}
	occupied := domain.BookedDays(booked, from, to)
	rule := house.PriceRule(uc.weekendMultiplier)

	days := make([]Day, 0, 31)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:    d,
			Booked:  occupied[d],
			Weekend: domain.IsWeekend(d),
			Price:   rule.DayPrice(d),
		})
	}

	return &Response{
		HouseID: house.ID,
		Month:   from.Format(domain.MonthFormat),
		Days:    days,
	}, nil
}
