package domain

// Pricing defaults
const (
	DefaultWeekendMultiplier = 1.25
)

// Booking defaults
const (
	DefaultMaxStayNights      = 30
	DefaultAdvanceBookingDays = 365
	DefaultTableSeatsPerDay   = 60
)

// Business validation constants
const (
	MinGuests             = 1
	MaxHouseGuests        = 20
	MaxTableGuests        = 20
	MaxEventSeats         = 10
	MaxNotesLength        = 500
	MaxNameLength         = 100
	MinPasswordLength     = 8
	MaxAvailabilityWindow = 90 // дней в поиске свободных домов
)

// Date format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// InactiveBookingStatuses статусы, не занимающие дом
var InactiveBookingStatuses = []BookingStatus{
	BookingCancelled,
	BookingCompleted,
}
