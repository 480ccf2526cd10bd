package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// Причины недоступности
const (
	ReasonBooked        = "booked"
	ReasonEmptyStay     = "empty_stay"
	ReasonPast          = "check_in_in_past"
	ReasonTooLong       = "stay_too_long"
	ReasonTooFarAhead   = "too_far_in_future"
	ReasonCapacity      = "capacity_exceeded"
	ReasonHouseInactive = "house_inactive"
)

// Request запрос на проверку доступности дома
type Request struct {
	HouseID  int64
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int // 0 = не проверять вместимость
}

// Response результат проверки
// Quote заполняется только для доступного интервала
type Response struct {
	HouseID   int64
	CheckIn   time.Time
	CheckOut  time.Time
	Nights    int
	Available bool
	Reason    string
	Quote     *domain.StayQuote
}
