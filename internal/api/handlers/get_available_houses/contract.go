package get_available_houses

import (
	"context"

	getAvailableHouses "github.com/m04kA/SMC-ResortService/internal/usecase/get_available_houses"
)

type GetAvailableHousesUseCase interface {
	Execute(ctx context.Context, req *getAvailableHouses.Request) (*getAvailableHouses.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
