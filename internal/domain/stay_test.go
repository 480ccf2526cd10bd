package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday
func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, in, out int) DateRange {
	t.Helper()
	r, err := NewDateRange(day(in), day(out))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), day(5))
	require.NoError(t, err)
	assert.Equal(t, day(2), r.CheckIn)
	assert.Equal(t, 3, r.Nights())

	_, err = NewDateRange(day(5), day(5))
	assert.ErrorIs(t, err, ErrEmptyStay)

	_, err = NewDateRange(day(6), day(5))
	assert.ErrorIs(t, err, ErrEmptyStay)

	_, err = NewDateRange(time.Time{}, day(5))
	assert.ErrorIs(t, err, ErrZeroDate)
}

func TestIsRangeAvailable(t *testing.T) {
	booked := []DateRange{mustRange(t, 10, 14)}

	tests := []struct {
		name      string
		candidate DateRange
		want      bool
	}{
		{name: "identical to booking", candidate: mustRange(t, 10, 14), want: false},
		{name: "contains booking", candidate: mustRange(t, 8, 16), want: false},
		{name: "inside booking", candidate: mustRange(t, 11, 12), want: false},
		{name: "overlaps left edge", candidate: mustRange(t, 8, 11), want: false},
		{name: "overlaps right edge", candidate: mustRange(t, 13, 15), want: false},
		{name: "checks out on booking check-in", candidate: mustRange(t, 7, 10), want: true},
		{name: "checks in on booking check-out", candidate: mustRange(t, 14, 17), want: true},
		{name: "far away", candidate: mustRange(t, 20, 25), want: true},
		{name: "zero nights", candidate: DateRange{CheckIn: day(20), CheckOut: day(20)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRangeAvailable(booked, tt.candidate))
		})
	}
}

func TestIsRangeAvailable_NoBookings(t *testing.T) {
	assert.True(t, IsRangeAvailable(nil, mustRange(t, 1, 2)))
}

func TestPriceRule_WeekendMultiplier(t *testing.T) {
	rule := PriceRule{BaseRate: 200, WeekendMultiplier: 1.5}

	assert.Equal(t, 200.0, rule.DayPrice(day(6))) // Friday
	assert.Equal(t, 300.0, rule.DayPrice(day(7))) // Saturday
	assert.Equal(t, 300.0, rule.DayPrice(day(8))) // Sunday
	assert.Equal(t, 200.0, rule.DayPrice(day(9))) // Monday
}

func TestPriceRule_DefaultMultiplier(t *testing.T) {
	rule := PriceRule{BaseRate: 100}
	assert.Equal(t, 100*DefaultWeekendMultiplier, rule.DayPrice(day(7)))
}

func TestPriceRule_QuoteSumsHalfOpenRange(t *testing.T) {
	rule := PriceRule{BaseRate: 100, WeekendMultiplier: 1.2}

	// Thu 5 .. Mon 9: nights Thu, Fri, Sat, Sun; Monday is check-out
	quote := rule.Quote(mustRange(t, 5, 9))

	require.Equal(t, 4, quote.NightCount())
	assert.Equal(t, day(5), quote.Nights[0].Date)
	assert.Equal(t, day(8), quote.Nights[3].Date)
	assert.False(t, quote.Nights[1].Weekend)
	assert.True(t, quote.Nights[2].Weekend)

	sum := 0.0
	for _, n := range quote.Nights {
		sum += n.Price
	}
	assert.InDelta(t, sum, quote.Total, 0.001)
	assert.InDelta(t, 440.0, quote.Total, 0.001)
}

func TestBookedDays(t *testing.T) {
	booked := []DateRange{mustRange(t, 1, 3), mustRange(t, 29, 33)}

	got := BookedDays(booked, day(2), day(31))

	assert.True(t, got[day(2)])
	assert.False(t, got[day(1)], "before window")
	assert.False(t, got[day(3)], "check-out day is free")
	assert.True(t, got[day(29)])
	assert.True(t, got[day(30)])
	assert.False(t, got[day(31)], "window end excluded")
	assert.Len(t, got, 3)
}
