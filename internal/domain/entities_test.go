package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingPending, BookingPending, false},
		{BookingPending, BookingStatus("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsOwnedBy(t *testing.T) {
	uid := int64(7)
	assert.True(t, (&Booking{UserID: &uid}).IsOwnedBy(7))
	assert.False(t, (&Booking{UserID: &uid}).IsOwnedBy(8))
	assert.False(t, (&Booking{}).IsOwnedBy(7))
}

func TestHouse_PriceRule(t *testing.T) {
	h := &House{BaseRate: 100}
	assert.Equal(t, 1.25, h.PriceRule(1.25).WeekendMultiplier)

	m := 2.0
	h.WeekendMultiplier = &m
	assert.Equal(t, 2.0, h.PriceRule(1.25).WeekendMultiplier)
}

func TestMembershipPlan_EndDate(t *testing.T) {
	start := time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), PlanMonthly.EndDate(start))
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), PlanQuarterly.EndDate(start))
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), PlanAnnual.EndDate(start))
}

func TestFitnessMembership_IsValidOn(t *testing.T) {
	m := &FitnessMembership{
		Status:    RegistrationActive,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, m.IsValidOn(time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.IsValidOn(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

	m.Status = RegistrationCancelled
	assert.False(t, m.IsValidOn(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestEvent_SeatsLeft(t *testing.T) {
	e := &Event{Capacity: 10}
	assert.Equal(t, 3, e.SeatsLeft(7))
	assert.Equal(t, 0, e.SeatsLeft(12))

	e.Capacity = 0
	assert.True(t, e.IsUnlimited())
	assert.Equal(t, -1, e.SeatsLeft(100))
}

func TestGroupMenu(t *testing.T) {
	categories := []*MenuCategory{
		{ID: 2, Name: "Breakfast"},
		{ID: 1, Name: "Grill"},
		{ID: 3, Name: "Empty"},
	}
	items := []*MenuItem{
		{ID: 10, CategoryID: 1, Name: "Steak"},
		{ID: 11, CategoryID: 2, Name: "Pancakes"},
		{ID: 12, CategoryID: 1, Name: "Corn"},
	}

	sections := GroupMenu(categories, items)

	assert.Len(t, sections, 2)
	assert.Equal(t, "Breakfast", sections[0].Category.Name)
	assert.Len(t, sections[0].Items, 1)
	assert.Equal(t, "Grill", sections[1].Category.Name)
	assert.Equal(t, []string{"Steak", "Corn"}, []string{sections[1].Items[0].Name, sections[1].Items[1].Name})
}

func TestValidateContact(t *testing.T) {
	assert.NoError(t, ValidateContact("Anna", "anna@example.com", "+7999", false))
	assert.NoError(t, ValidateContact("Anna", "", "+7999", true))
	assert.ErrorIs(t, ValidateContact("Anna", "", "+7999", false), ErrInvalidContact)
	assert.ErrorIs(t, ValidateContact(" ", "anna@example.com", "+7999", false), ErrInvalidContact)
	assert.ErrorIs(t, ValidateContact("Anna", "anna@example.com", "", false), ErrInvalidContact)
	assert.ErrorIs(t, ValidateContact("Anna", "not-an-email", "+7999", true), ErrInvalidContact)
}
