package create_booking

import "errors"

var (
	// ErrHouseNotFound возвращается, когда дом не найден
	ErrHouseNotFound = errors.New("create_booking: house not found")

	// ErrHouseInactive возвращается, когда дом снят с бронирования
	ErrHouseInactive = errors.New("create_booking: house is not available for booking")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости дома
	ErrTooManyGuests = errors.New("create_booking: too many guests for this house")

	// ErrInvalidDates возвращается при пустом или перевернутом интервале
	ErrInvalidDates = errors.New("create_booking: check-out must be after check-in")

	// ErrDateInPast возвращается, когда заезд в прошлом
	ErrDateInPast = errors.New("create_booking: check-in is in the past")

	// ErrStayTooLong возвращается, когда превышена максимальная длительность проживания
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advance_booking_days
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDatesNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrDatesNotAvailable = errors.New("create_booking: house is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
