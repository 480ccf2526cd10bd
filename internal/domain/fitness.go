package domain

import (
	"time"

	"github.com/m04kA/SMC-ResortService/pkg/types"
)

// FitnessCourse is a recurring class (yoga, aqua aerobics...)
type FitnessCourse struct {
	ID          int64
	Title       string
	Description string
	Trainer     string
	Schedule    string // свободный текст, например "Пн, Ср 09:00"
	StartTime   *types.TimeString
	Capacity    int
	Price       float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RegistrationStatus is shared by course registrations and memberships
type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "active"
	RegistrationCancelled RegistrationStatus = "cancelled"
	RegistrationExpired   RegistrationStatus = "expired"
)

// Valid reports whether s is a known registration status
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationActive, RegistrationCancelled, RegistrationExpired:
		return true
	}
	return false
}

// FitnessCourseRegistration is a guest enrolled into a course
type FitnessCourseRegistration struct {
	ID        int64
	CourseID  int64
	UserID    *int64
	Name      string
	Email     string
	Phone     string
	Status    RegistrationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipPlan is the duration of a gym membership
type MembershipPlan string

const (
	PlanMonthly   MembershipPlan = "monthly"
	PlanQuarterly MembershipPlan = "quarterly"
	PlanAnnual    MembershipPlan = "annual"
)

// Valid reports whether p is a known membership plan
func (p MembershipPlan) Valid() bool {
	switch p {
	case PlanMonthly, PlanQuarterly, PlanAnnual:
		return true
	}
	return false
}

// EndDate returns the last covered date of a membership starting at start
func (p MembershipPlan) EndDate(start time.Time) time.Time {
	start = DateOnly(start)
	switch p {
	case PlanQuarterly:
		return start.AddDate(0, 3, 0)
	case PlanAnnual:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// FitnessMembership is a gym membership
type FitnessMembership struct {
	ID        int64
	UserID    *int64
	Name      string
	Email     string
	Phone     string
	Plan      MembershipPlan
	StartDate time.Time
	EndDate   time.Time
	Price     float64
	Status    RegistrationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidOn returns true if the membership covers the day
func (m *FitnessMembership) IsValidOn(day time.Time) bool {
	day = DateOnly(day)
	return m.Status == RegistrationActive && !day.Before(DateOnly(m.StartDate)) && day.Before(DateOnly(m.EndDate))
}
