package get_booking

import (
	"math"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/internal/service/bookings/models"
)

// BookingDetailsResponse карточка бронирования для личного кабинета
type BookingDetailsResponse struct {
	models.BookingResponse

	// Средняя цена за ночь с учетом выходных
	AveragePerNight float64 `json:"averagePerNight"`
	CanCancel       bool    `json:"canCancel"`
}

func toDetailsResponse(b *models.BookingResponse) BookingDetailsResponse {
	resp := BookingDetailsResponse{BookingResponse: *b}

	if b.Nights > 0 {
		resp.AveragePerNight = math.Round(b.TotalPrice/float64(b.Nights)*100) / 100
	}

	status := domain.BookingStatus(b.Status)
	resp.CanCancel = (&domain.Booking{Status: status}).CanBeCancelled()

	return resp
}
