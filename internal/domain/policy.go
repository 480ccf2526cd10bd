package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrCheckInInPast  = errors.New("domain: check-in is in the past")
	ErrStayTooLong    = errors.New("domain: stay exceeds maximum length")
	ErrTooFarInFuture = errors.New("domain: check-in is too far in the future")
)

// BookingPolicy resort-wide stay rules
type BookingPolicy struct {
	WeekendMultiplier  float64
	MaxStayNights      int
	AdvanceBookingDays int // 0 = unlimited
}

// DefaultBookingPolicy returns the policy used when nothing is configured
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		WeekendMultiplier:  DefaultWeekendMultiplier,
		MaxStayNights:      DefaultMaxStayNights,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}

// CheckStay validates r against the policy relative to now.
// Checking in today is allowed.
func (p BookingPolicy) CheckStay(r DateRange, now time.Time) error {
	today := DateOnly(now)

	if r.Nights() <= 0 {
		return ErrEmptyStay
	}
	if r.CheckIn.Before(today) {
		return ErrCheckInInPast
	}
	if p.MaxStayNights > 0 && r.Nights() > p.MaxStayNights {
		return fmt.Errorf("%w: %d nights, max %d", ErrStayTooLong, r.Nights(), p.MaxStayNights)
	}
	if p.AdvanceBookingDays > 0 && r.CheckIn.After(today.AddDate(0, 0, p.AdvanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrTooFarInFuture, p.AdvanceBookingDays)
	}

	return nil
}
