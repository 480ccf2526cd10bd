package table_reservation

import "errors"

var (
	ErrReservationNotFound = errors.New("table_reservation.repository: reservation not found")

	ErrBuildQuery = errors.New("table_reservation.repository: failed to build query")
	ErrExecQuery  = errors.New("table_reservation.repository: failed to execute query")
	ErrScanRow    = errors.New("table_reservation.repository: failed to scan row")
)
