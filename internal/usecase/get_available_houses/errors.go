package get_available_houses

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_houses: invalid input data")

	// ErrInvalidStay возвращается, когда интервал нарушает правила бронирования
	ErrInvalidStay = errors.New("get_available_houses: invalid stay")

	ErrInternal = errors.New("get_available_houses: internal error")
)
