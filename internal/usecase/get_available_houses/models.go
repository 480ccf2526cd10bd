package get_available_houses

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// Request поиск свободных домов на интервал [CheckIn, CheckOut)
type Request struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Houses   []AvailableHouse
}

// AvailableHouse свободный дом с расчетом стоимости
type AvailableHouse struct {
	House *domain.House
	Quote domain.StayQuote
}
