package notifier

import "time"

// Типы событий, публикуемых в топик
const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingStatusChanged = "booking.status_changed"
	EventReservationCreated   = "reservation.created"
)

// Виды резерваций для EventReservationCreated
const (
	KindTable      = "table"
	KindEvent      = "event"
	KindCourse     = "course"
	KindMembership = "membership"
)

// Envelope сообщение в топике
type Envelope struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// BookingPayload данные событий бронирования дома
type BookingPayload struct {
	BookingID      int64   `json:"booking_id"`
	HouseID        int64   `json:"house_id"`
	UserID         *int64  `json:"user_id,omitempty"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	Guests         int     `json:"guests"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	PreviousStatus string  `json:"previous_status,omitempty"`
	GuestEmail     string  `json:"guest_email"`
}

// ReservationPayload данные о новой резервации (стол, мероприятие, фитнес)
type ReservationPayload struct {
	Kind          string `json:"kind"`
	ReservationID int64  `json:"reservation_id"`
	TargetID      int64  `json:"target_id,omitempty"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
}
