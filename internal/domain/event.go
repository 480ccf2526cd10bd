package domain

import "time"

// Event is a resort event guests can reserve seats for
type Event struct {
	ID          int64
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      *time.Time
	Location    string
	Price       float64
	Capacity    int // 0 = без ограничения
	ImageURL    *string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsUnlimited returns true if the event has no seat limit
func (e *Event) IsUnlimited() bool {
	return e.Capacity <= 0
}

// HasStarted returns true if the event is in the past relative to now
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartsAt.After(now)
}

// SeatsLeft returns the remaining seats given the already reserved count
func (e *Event) SeatsLeft(reserved int) int {
	if e.IsUnlimited() {
		return -1
	}
	left := e.Capacity - reserved
	if left < 0 {
		return 0
	}
	return left
}

// EventReservationStatus represents the status of an event reservation
type EventReservationStatus string

const (
	EventReservationPending   EventReservationStatus = "pending"
	EventReservationConfirmed EventReservationStatus = "confirmed"
	EventReservationCancelled EventReservationStatus = "cancelled"
)

// Valid reports whether s is a known event reservation status
func (s EventReservationStatus) Valid() bool {
	switch s {
	case EventReservationPending, EventReservationConfirmed, EventReservationCancelled:
		return true
	}
	return false
}

// EventReservation is a guest's seat reservation for an event
type EventReservation struct {
	ID        int64
	EventID   int64
	UserID    *int64
	Name      string
	Email     string
	Phone     string
	Seats     int
	Status    EventReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
