package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	"github.com/m04kA/SMC-ResortService/pkg/types"
)

// CreateReservationRequest бронь столика
type CreateReservationRequest struct {
	UserID  *int64  `json:"-"`
	Date    string  `json:"date" validate:"required"` // "2025-10-15"
	Time    string  `json:"time" validate:"required"` // "19:30"
	Guests  int     `json:"guests" validate:"min=1,max=20"`
	Name    string  `json:"name" validate:"required,max=100"`
	Phone   string  `json:"phone" validate:"required,max=32"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// Parse разбирает дату и время брони
func (r *CreateReservationRequest) Parse() (time.Time, types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return time.Time{}, types.TimeString{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	ts, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return time.Time{}, types.TimeString{}, fmt.Errorf("invalid time %q: %w", r.Time, err)
	}
	return domain.DateOnly(date), ts, nil
}

// ListReservationsRequest фильтр брони в админке
type ListReservationsRequest struct {
	Date   *string `json:"date,omitempty"`
	Status *string `json:"status,omitempty"`
	Limit  uint64  `json:"limit,omitempty"`
	Offset uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.TableReservationsFilter, error) {
	filter := domain.TableReservationsFilter{Limit: r.Limit, Offset: r.Offset}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q", *r.Date)
		}
		filter.Date = &date
	}
	if r.Status != nil {
		status := domain.TableReservationStatus(*r.Status)
		if !status.Valid() {
			return filter, fmt.Errorf("invalid status %q", *r.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest смена статуса брони
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReservationResponse бронь столика
type ReservationResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainReservation(r *domain.TableReservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      r.Time.String(),
		Guests:    r.Guests,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Comment:   r.Comment,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func FromDomainReservations(list []*domain.TableReservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, FromDomainReservation(r))
	}
	return resp
}
