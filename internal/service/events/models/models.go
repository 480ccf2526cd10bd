package models

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// EventRequest создание и обновление мероприятия
type EventRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Location    string     `json:"location"`
	Price       float64    `json:"price"`
	Capacity    int        `json:"capacity"` // 0 = без ограничения
	ImageURL    *string    `json:"imageUrl,omitempty"`
	IsPublished bool       `json:"isPublished"`
}

// ToDomain конвертирует запрос в domain модель
func (r *EventRequest) ToDomain() *domain.Event {
	return &domain.Event{
		Title:       r.Title,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Location:    r.Location,
		Price:       r.Price,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
		IsPublished: r.IsPublished,
	}
}

// ReserveRequest запись гостя на мероприятие
type ReserveRequest struct {
	UserID *int64 `json:"-"`
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,max=32"`
	Seats  int    `json:"seats" validate:"min=1,max=10"`
}

// UpdateReservationStatusRequest смена статуса записи (админка)
type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// EventResponse мероприятие
type EventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Location    string     `json:"location"`
	Price       float64    `json:"price"`
	Capacity    int        `json:"capacity"`
	SeatsLeft   *int       `json:"seatsLeft,omitempty"` // nil, если без ограничения или не считалось
	ImageURL    *string    `json:"imageUrl,omitempty"`
	IsPublished bool       `json:"isPublished"`
}

// ReservationResponse запись на мероприятие
type ReservationResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    *int64    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Seats     int       `json:"seats"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainEvent(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Location:    e.Location,
		Price:       e.Price,
		Capacity:    e.Capacity,
		ImageURL:    e.ImageURL,
		IsPublished: e.IsPublished,
	}
}

func FromDomainEvents(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, FromDomainEvent(e))
	}
	return resp
}

func FromDomainReservation(r *domain.EventReservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Seats:     r.Seats,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func FromDomainReservations(list []*domain.EventReservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, FromDomainReservation(r))
	}
	return resp
}
