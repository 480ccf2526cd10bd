package get_available_houses

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	getAvailableHouses "github.com/m04kA/SMC-ResortService/internal/usecase/get_available_houses"
)

// AvailableHouseResponse свободный дом с итоговой ценой
type AvailableHouseResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	BaseRate   float64  `json:"baseRate"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
	Amenities  []string `json:"amenities"`
	TotalPrice float64  `json:"totalPrice"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	CheckIn  string                   `json:"checkIn"`
	CheckOut string                   `json:"checkOut"`
	Nights   int                      `json:"nights"`
	Houses   []AvailableHouseResponse `json:"houses"`
}

// ToUseCaseRequest разбирает query параметры checkIn, checkOut, guests
func ToUseCaseRequest(checkInStr, checkOutStr, guestsStr string) (*getAvailableHouses.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	guests := domain.MinGuests
	if guestsStr != "" {
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableHouses.Request{CheckIn: checkIn, CheckOut: checkOut, Guests: guests}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableHouses.Response) *SearchResponse {
	houses := make([]AvailableHouseResponse, 0, len(resp.Houses))
	for _, ah := range resp.Houses {
		amenities := ah.House.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		houses = append(houses, AvailableHouseResponse{
			ID:         ah.House.ID,
			Name:       ah.House.Name,
			Capacity:   ah.House.Capacity,
			BaseRate:   ah.House.BaseRate,
			ImageURL:   ah.House.ImageURL,
			Amenities:  amenities,
			TotalPrice: ah.Quote.Total,
		})
	}

	return &SearchResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Houses:   houses,
	}
}
