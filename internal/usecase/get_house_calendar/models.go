package get_house_calendar

import "time"

// Request запрос календаря дома на месяц
type Request struct {
	HouseID int64
	Month   string // YYYY-MM
}

// Response календарь месяца: по одной записи на каждую ночь
type Response struct {
	HouseID int64
	Month   string
	Days    []Day
}

// Day ночь календаря
type Day struct {
	Date    time.Time
	Booked  bool
	Weekend bool
	Price   float64
}
