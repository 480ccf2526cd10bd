package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("table reservation not found")

	// ErrDateInPast возвращается при брони на прошедшую дату
	ErrDateInPast = errors.New("reservation date is in the past")

	// ErrFullyBooked возвращается, когда на дату не осталось мест
	ErrFullyBooked = errors.New("restaurant is fully booked for the date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
