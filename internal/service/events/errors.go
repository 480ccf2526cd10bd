package events

import "errors"

var (
	// ErrEventNotFound возвращается, когда мероприятие не найдено или не опубликовано
	ErrEventNotFound = errors.New("event not found")

	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("event reservation not found")

	// ErrEventStarted возвращается при записи на уже начавшееся мероприятие
	ErrEventStarted = errors.New("event has already started")

	// ErrNotEnoughSeats возвращается, когда свободных мест меньше, чем запрошено
	ErrNotEnoughSeats = errors.New("not enough seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
