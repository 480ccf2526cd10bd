package domain

import "time"

// House is a bookable unit of the resort
type House struct {
	ID          int64
	Name        string
	Description string
	Capacity    int
	BaseRate    float64
	// WeekendMultiplier overrides the resort-wide multiplier when set
	WeekendMultiplier *float64
	Amenities         []string
	ImageURL          *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PriceRule returns the pricing rule of the house, falling back to the resort default multiplier
func (h *House) PriceRule(defaultMultiplier float64) PriceRule {
	m := defaultMultiplier
	if h.WeekendMultiplier != nil && *h.WeekendMultiplier > 0 {
		m = *h.WeekendMultiplier
	}
	return PriceRule{BaseRate: h.BaseRate, WeekendMultiplier: m}
}

// Fits returns true if the house accommodates the given number of guests
func (h *House) Fits(guests int) bool {
	return guests > 0 && guests <= h.Capacity
}
