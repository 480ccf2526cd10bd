package cancel_booking

import (
	"github.com/m04kA/SMC-ResortService/internal/service/bookings/models"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ToServiceRequest ID пользователя берется из X-User-ID, не из тела
func ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{UserID: userID}
}
