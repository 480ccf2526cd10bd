package create_booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HouseID <= 0 {
		return fmt.Errorf("%w: houseID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxHouseGuests {
		return fmt.Errorf("%w: guests must be in %d..%d", ErrInvalidInput, domain.MinGuests, domain.MaxHouseGuests)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: guest name is required (max %d chars)", ErrInvalidInput, domain.MaxNameLength)
	}

	if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
		return fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestPhone) == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d chars", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// mapStayError переводит ошибки политики бронирования в ошибки usecase
func mapStayError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyStay), errors.Is(err, domain.ErrZeroDate):
		return ErrInvalidDates
	case errors.Is(err, domain.ErrCheckInInPast):
		return ErrDateInPast
	case errors.Is(err, domain.ErrStayTooLong):
		return fmt.Errorf("%w: %v", ErrStayTooLong, err)
	case errors.Is(err, domain.ErrTooFarInFuture):
		return fmt.Errorf("%w: %v", ErrDateTooFarInFuture, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
