package domain

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrEmptyStay is returned when check-out is not after check-in
	ErrEmptyStay = errors.New("domain: check-out must be after check-in")

	// ErrZeroDate is returned when one of the stay dates is missing
	ErrZeroDate = errors.New("domain: stay dates are required")
)

// DateRange is a half-open day interval [CheckIn, CheckOut).
// Both bounds are normalized to UTC midnight, so the check-out day itself is free.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange builds a stay range; zero-night ranges are rejected
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return DateRange{}, ErrZeroDate
	}
	r := DateRange{CheckIn: DateOnly(checkIn), CheckOut: DateOnly(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, ErrEmptyStay
	}
	return r, nil
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the range
func (r DateRange) Nights() int {
	if !r.CheckOut.After(r.CheckIn) {
		return 0
	}
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges share at least one night.
// Back-to-back stays (one checks out the day the other checks in) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// ContainsDay reports whether the night starting on day belongs to the range
func (r DateRange) ContainsDay(day time.Time) bool {
	day = DateOnly(day)
	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

// Days returns every night of the range, check-out excluded
func (r DateRange) Days() []time.Time {
	nights := r.Nights()
	days := make([]time.Time, 0, nights)
	for i := 0; i < nights; i++ {
		days = append(days, r.CheckIn.AddDate(0, 0, i))
	}
	return days
}

// IsRangeAvailable reports whether every night of candidate is free of the booked ranges.
// A zero-night candidate is never available.
func IsRangeAvailable(booked []DateRange, candidate DateRange) bool {
	if candidate.Nights() <= 0 {
		return false
	}
	for _, b := range booked {
		if b.Overlaps(candidate) {
			return false
		}
	}
	return true
}

// BookedDays returns the set of nights inside [from, to) covered by any of the ranges
func BookedDays(booked []DateRange, from, to time.Time) map[time.Time]bool {
	window := DateRange{CheckIn: DateOnly(from), CheckOut: DateOnly(to)}
	days := make(map[time.Time]bool)
	for _, b := range booked {
		if !b.Overlaps(window) {
			continue
		}
		for _, d := range b.Days() {
			if window.ContainsDay(d) {
				days[d] = true
			}
		}
	}
	return days
}

// IsWeekend reports whether the night of day is priced at the weekend rate
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// PriceRule prices a single night: BaseRate on weekdays, BaseRate*WeekendMultiplier on Saturday and Sunday
type PriceRule struct {
	BaseRate          float64
	WeekendMultiplier float64
}

// NightPrice is the price of one night of a stay
type NightPrice struct {
	Date    time.Time
	Weekend bool
	Price   float64
}

// StayQuote is the price breakdown of a stay
type StayQuote struct {
	Range  DateRange
	Nights []NightPrice
	Total  float64
}

// NightCount returns the number of priced nights
func (q StayQuote) NightCount() int {
	return len(q.Nights)
}

// DayPrice returns the price of the night starting on day, rounded to cents
func (p PriceRule) DayPrice(day time.Time) float64 {
	price := p.BaseRate
	if IsWeekend(day) {
		price *= p.multiplier()
	}
	return roundCents(price)
}

// Quote sums per-night prices over the half-open range
func (p PriceRule) Quote(r DateRange) StayQuote {
	quote := StayQuote{Range: r, Nights: make([]NightPrice, 0, r.Nights())}
	total := 0.0
	for _, day := range r.Days() {
		price := p.DayPrice(day)
		quote.Nights = append(quote.Nights, NightPrice{Date: day, Weekend: IsWeekend(day), Price: price})
		total += price
	}
	quote.Total = roundCents(total)
	return quote
}

func (p PriceRule) multiplier() float64 {
	if p.WeekendMultiplier <= 0 {
		return DefaultWeekendMultiplier
	}
	return p.WeekendMultiplier
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
