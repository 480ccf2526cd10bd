package check_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-ResortService/internal/usecase/check_availability"
)

// NightResponse цена одной ночи
type NightResponse struct {
	Date    string  `json:"date"`
	Weekend bool    `json:"weekend"`
	Price   float64 `json:"price"`
}

// AvailabilityResponse HTTP response model
// totalPrice и breakdown только для доступного интервала
type AvailabilityResponse struct {
	HouseID    int64           `json:"houseId"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	Nights     int             `json:"nights"`
	Available  bool            `json:"available"`
	Reason     string          `json:"reason,omitempty"`
	TotalPrice *float64        `json:"totalPrice,omitempty"`
	Breakdown  []NightResponse `json:"breakdown,omitempty"`
}

// ToUseCaseRequest разбирает query параметры checkIn, checkOut, guests
func ToUseCaseRequest(houseID int64, checkInStr, checkOutStr, guestsStr string) (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	guests := 0
	if guestsStr != "" {
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			return nil, err
		}
	}

	return &checkAvailability.Request{
		HouseID:  houseID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		HouseID:   resp.HouseID,
		CheckIn:   resp.CheckIn.Format(domain.DateFormat),
		CheckOut:  resp.CheckOut.Format(domain.DateFormat),
		Nights:    resp.Nights,
		Available: resp.Available,
		Reason:    resp.Reason,
	}

	if resp.Quote != nil {
		total := resp.Quote.Total
		out.TotalPrice = &total
		out.Breakdown = make([]NightResponse, 0, len(resp.Quote.Nights))
		for _, n := range resp.Quote.Nights {
			out.Breakdown = append(out.Breakdown, NightResponse{
				Date:    n.Date.Format(domain.DateFormat),
				Weekend: n.Weekend,
				Price:   n.Price,
			})
		}
	}

	return out
}
