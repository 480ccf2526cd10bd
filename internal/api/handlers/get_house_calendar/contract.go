package get_house_calendar

import (
	"context"

	getHouseCalendar "github.com/m04kA/SMC-ResortService/internal/usecase/get_house_calendar"
)

type GetHouseCalendarUseCase interface {
	Execute(ctx context.Context, req *getHouseCalendar.Request) (*getHouseCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
