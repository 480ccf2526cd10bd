package domain

import (
	"time"
)

// BookingStatus represents the status of a house booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking represents a stay in a house
type Booking struct {
	ID         int64
	HouseID    int64
	UserID     *int64 // nil для гостевых бронирований без аккаунта
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
	Status     BookingStatus

	GuestName  string
	GuestEmail string
	GuestPhone string
	Notes      *string

	// Denormalized data for history
	HouseName string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Range returns the stay as a half-open date range
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: DateOnly(b.CheckIn), CheckOut: DateOnly(b.CheckOut)}
}

// IsActive returns true if the booking still blocks the house
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// CanTransitionTo checks admin status changes.
// Cancelled and completed bookings are final.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if !next.Valid() || next == b.Status {
		return false
	}
	switch b.Status {
	case BookingPending:
		return true
	case BookingConfirmed:
		return next == BookingCancelled || next == BookingCompleted
	}
	return false
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	HouseID *int64
	UserID  *int64
	Status  *BookingStatus
	From    *time.Time // бронирования, заканчивающиеся после From
	To      *time.Time // бронирования, начинающиеся до To
	Limit   uint64
	Offset  uint64
}

// ActiveBookingStatuses статусы, занимающие дом
var ActiveBookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
}
