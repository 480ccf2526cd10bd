package house

import "errors"

var (
	// ErrHouseNotFound возвращается, когда дом не найден
	ErrHouseNotFound = errors.New("house.repository: house not found")

	// ErrHouseInUse возвращается при удалении дома, на который есть бронирования
	ErrHouseInUse = errors.New("house.repository: house has bookings")

	ErrBuildQuery = errors.New("house.repository: failed to build query")
	ErrExecQuery  = errors.New("house.repository: failed to execute query")
	ErrScanRow    = errors.New("house.repository: failed to scan row")
)
