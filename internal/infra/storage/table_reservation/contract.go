package table_reservation

import (
	"github.com/m04kA/SMC-ResortService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
