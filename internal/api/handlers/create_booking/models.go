package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	createBooking "github.com/m04kA/SMC-ResortService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HouseID    int64   `json:"houseId" validate:"required,gt=0"`
	CheckIn    string  `json:"checkIn" validate:"required"`  // "2025-10-15"
	CheckOut   string  `json:"checkOut" validate:"required"` // "2025-10-18"
	Guests     int     `json:"guests" validate:"required,min=1,max=20"`
	GuestName  string  `json:"guestName" validate:"required,max=100"`
	GuestEmail string  `json:"guestEmail" validate:"required,email"`
	GuestPhone string  `json:"guestPhone" validate:"required,max=32"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// NightResponse цена одной ночи
type NightResponse struct {
	Date    string  `json:"date"`
	Weekend bool    `json:"weekend"`
	Price   float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64           `json:"id"`
	HouseID    int64           `json:"houseId"`
	HouseName  string          `json:"houseName"`
	UserID     *int64          `json:"userId,omitempty"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	Nights     int             `json:"nights"`
	Guests     int             `json:"guests"`
	Status     string          `json:"status"`
	GuestName  string          `json:"guestName"`
	GuestEmail string          `json:"guestEmail"`
	GuestPhone string          `json:"guestPhone"`
	Notes      *string         `json:"notes,omitempty"`
	TotalPrice float64         `json:"totalPrice"`
	Breakdown  []NightResponse `json:"breakdown"`
	CreatedAt  string          `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		HouseID:    r.HouseID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	breakdown := make([]NightResponse, 0, len(resp.Quote.Nights))
	for _, n := range resp.Quote.Nights {
		breakdown = append(breakdown, NightResponse{
			Date:    n.Date.Format(domain.DateFormat),
			Weekend: n.Weekend,
			Price:   n.Price,
		})
	}

	return &BookingResponse{
		ID:         resp.ID,
		HouseID:    resp.HouseID,
		HouseName:  resp.HouseName,
		UserID:     resp.UserID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Nights:     resp.Quote.NightCount(),
		Guests:     resp.Guests,
		Status:     resp.Status,
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		GuestPhone: resp.GuestPhone,
		Notes:      resp.Notes,
		TotalPrice: resp.Quote.Total,
		Breakdown:  breakdown,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
