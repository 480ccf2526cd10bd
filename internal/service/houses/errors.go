package houses

import "errors"

var (
	// ErrHouseNotFound возвращается, когда дом не найден
	ErrHouseNotFound = errors.New("house not found")

	// ErrHouseHasBookings возвращается при удалении дома с бронированиями
	ErrHouseHasBookings = errors.New("house has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnsupportedImage возвращается для неподдерживаемого типа файла
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrStorageNotConfigured возвращается, когда загрузка картинок выключена
	ErrStorageNotConfigured = errors.New("image storage is not configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
