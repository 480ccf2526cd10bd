package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/types"
)

// CourseRequest создание и обновление курса
type CourseRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Trainer     string  `json:"trainer"`
	Schedule    string  `json:"schedule"`
	StartTime   *string `json:"startTime,omitempty"` // "09:00"
	Capacity    int     `json:"capacity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// ToDomain конвертирует запрос в domain модель
func (r *CourseRequest) ToDomain() (*domain.FitnessCourse, error) {
	course := &domain.FitnessCourse{
		Title:       r.Title,
		Description: r.Description,
		Trainer:     r.Trainer,
		Schedule:    r.Schedule,
		Capacity:    r.Capacity,
		Price:       r.Price,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}
	if r.StartTime != nil && *r.StartTime != "" {
		ts, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q", *r.StartTime)
		}
		course.StartTime = &ts
	}
	return course, nil
}

// RegisterRequest запись на курс
type RegisterRequest struct {
	UserID *int64 `json:"-"`
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,max=32"`
}

// MembershipRequest оформление абонемента
type MembershipRequest struct {
	UserID    *int64 `json:"-"`
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=32"`
	Plan      string `json:"plan" validate:"required,oneof=monthly quarterly annual"`
	StartDate string `json:"startDate" validate:"required"` // "2025-10-01"
}

// UpdateStatusRequest смена статуса записи или абонемента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CourseResponse курс
type CourseResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trainer     string  `json:"trainer"`
	Schedule    string  `json:"schedule"`
	StartTime   *string `json:"startTime,omitempty"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"isActive"`
}

// RegistrationResponse запись на курс
type RegistrationResponse struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"courseId"`
	UserID    *int64    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MembershipResponse абонемент
type MembershipResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Plan      string    `json:"plan"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainCourse(c *domain.FitnessCourse) CourseResponse {
	resp := CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Trainer:     c.Trainer,
		Schedule:    c.Schedule,
		Capacity:    c.Capacity,
		Price:       c.Price,
		IsActive:    c.IsActive,
	}
	if c.StartTime != nil {
		s := c.StartTime.String()
		resp.StartTime = &s
	}
	return resp
}

func FromDomainCourses(list []*domain.FitnessCourse) []CourseResponse {
	resp := make([]CourseResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, FromDomainCourse(c))
	}
	return resp
}

func FromDomainRegistration(r *domain.FitnessCourseRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		CourseID:  r.CourseID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func FromDomainRegistrations(list []*domain.FitnessCourseRegistration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, FromDomainRegistration(r))
	}
	return resp
}

func FromDomainMembership(m *domain.FitnessMembership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Plan:      string(m.Plan),
		StartDate: m.StartDate.Format(domain.DateFormat),
		EndDate:   m.EndDate.Format(domain.DateFormat),
		Price:     m.Price,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func FromDomainMemberships(list []*domain.FitnessMembership) []MembershipResponse {
	resp := make([]MembershipResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, FromDomainMembership(m))
	}
	return resp
}
