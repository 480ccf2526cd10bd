package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
	"github.com/m04kA/SMC-ResortService/pkg/txmanager"
)

// UseCase use case для создания бронирования дома
type UseCase struct {
	houseRepo    HouseRepository
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      MetricsRecorder
	txManager    TransactionManager
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	houseRepo HouseRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics MetricsRecorder,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		houseRepo:    houseRepo,
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции,
// строка дома и пересекающиеся бронирования блокируются (FOR UPDATE)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: house=%d, check_in=%s, check_out=%s, guests=%d",
		req.HouseID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Интервал и правила бронирования
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid stay: %v", err)
		return nil, mapStayError(err)
	}
	if err := uc.policy.CheckStay(stay, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: stay rejected: %v", err)
		return nil, mapStayError(err)
	}

	var (
		result *domain.Booking
		quote  domain.StayQuote
	)

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Дом (строка блокируется)
		house, err := uc.houseRepo.GetByID(txCtx, req.HouseID)
		if err != nil {
			if errors.Is(err, houseRepo.ErrHouseNotFound) {
				uc.logger.Warn("CreateBooking: house id=%d not found", req.HouseID)
				return ErrHouseNotFound
			}
			uc.logger.Error("CreateBooking: failed to get house id=%d: %v", req.HouseID, err)
			return fmt.Errorf("%w: failed to get house: %v", ErrInternal, err)
		}

		if !house.IsActive {
			uc.logger.Warn("CreateBooking: house id=%d is inactive", house.ID)
			return ErrHouseInactive
		}
		if !house.Fits(req.Guests) {
			uc.logger.Warn("CreateBooking: house id=%d capacity=%d, guests=%d", house.ID, house.Capacity, req.Guests)
			return ErrTooManyGuests
		}

		// 3.2. Активные бронирования на интервал с блокировкой
		bookings, err := uc.bookingRepo.GetActiveByHouse(txCtx, house.ID, stay.CheckIn, stay.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		booked := make([]domain.DateRange, 0, len(bookings))
		for _, b := range bookings {
			if b.IsActive() {
				booked = append(booked, b.Range())
			}
		}

		// 3.3. Проверка доступности
		if !domain.IsRangeAvailable(booked, stay) {
			uc.logger.Warn("CreateBooking: house id=%d already booked for %s..%s",
				house.ID, stay.CheckIn.Format(domain.DateFormat), stay.CheckOut.Format(domain.DateFormat))
			return ErrDatesNotAvailable
		}

		// 3.4. Расчет стоимости и сохранение
		quote = house.PriceRule(uc.policy.WeekendMultiplier).Quote(stay)

		booking := &domain.Booking{
			HouseID:    house.ID,
			UserID:     req.UserID,
			CheckIn:    stay.CheckIn,
			CheckOut:   stay.CheckOut,
			Guests:     req.Guests,
			TotalPrice: quote.Total,
			Status:     domain.BookingPending,
			GuestName:  strings.TrimSpace(req.GuestName),
			GuestEmail: strings.TrimSpace(req.GuestEmail),
			GuestPhone: strings.TrimSpace(req.GuestPhone),
			Notes:      req.Notes,
			HouseName:  house.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		// Параллельная транзакция заняла интервал, повторы исчерпаны
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for house id=%d: %v", req.HouseID, err)
			return nil, fmt.Errorf("%w: %v", ErrDatesNotAvailable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)
	uc.metrics.BookingCreated()

	// 4. Уведомление после фиксации; ошибка публикации не отменяет бронирование
	if err := uc.notifier.BookingCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created for id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:         result.ID,
		HouseID:    result.HouseID,
		HouseName:  result.HouseName,
		UserID:     result.UserID,
		CheckIn:    result.CheckIn,
		CheckOut:   result.CheckOut,
		Guests:     result.Guests,
		Status:     string(result.Status),
		GuestName:  result.GuestName,
		GuestEmail: result.GuestEmail,
		GuestPhone: result.GuestPhone,
		Notes:      result.Notes,
		Quote:      quote,
		CreatedAt:  result.CreatedAt,
	}, nil
}
