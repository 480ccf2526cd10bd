package get_house_calendar

import (
	"github.com/m04kA/SMC-ResortService/internal/domain"
	getHouseCalendar "github.com/m04kA/SMC-ResortService/internal/usecase/get_house_calendar"
)

// DayResponse день календаря
type DayResponse struct {
	Date    string  `json:"date"`
	Booked  bool    `json:"booked"`
	Weekend bool    `json:"weekend"`
	Price   float64 `json:"price"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	HouseID int64         `json:"houseId"`
	Month   string        `json:"month"`
	Days    []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHouseCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:    d.Date.Format(domain.DateFormat),
			Booked:  d.Booked,
			Weekend: d.Weekend,
			Price:   d.Price,
		})
	}
	return &CalendarResponse{HouseID: resp.HouseID, Month: resp.Month, Days: days}
}
