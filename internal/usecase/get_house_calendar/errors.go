package get_house_calendar

import "errors"

var (
	ErrHouseNotFound = errors.New("get_house_calendar: house not found")
	ErrInvalidMonth  = errors.New("get_house_calendar: invalid month, expected YYYY-MM")
	ErrInternal      = errors.New("get_house_calendar: internal error")
)
