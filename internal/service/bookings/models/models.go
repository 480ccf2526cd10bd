package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования (админка)
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос списка бронирований в админке
type ListBookingsRequest struct {
	HouseID *int64     `json:"houseId,omitempty"`
	UserID  *int64     `json:"userId,omitempty"`
	Status  *string    `json:"status,omitempty"`
	From    *time.Time `json:"from,omitempty"` // бронирования, заканчивающиеся после From
	To      *time.Time `json:"to,omitempty"`   // бронирования, начинающиеся до To
	Limit   uint64     `json:"limit,omitempty"`
	Offset  uint64     `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		HouseID: r.HouseID,
		UserID:  r.UserID,
		From:    r.From,
		To:      r.To,
		Limit:   r.Limit,
		Offset:  r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return filter, errors.New("from must be before to")
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	HouseID    int64   `json:"houseId"`
	UserID     *int64  `json:"userId,omitempty"`
	CheckIn    string  `json:"checkIn"`  // "2025-10-15"
	CheckOut   string  `json:"checkOut"` // "2025-10-18"
	Nights     int     `json:"nights"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`

	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
	Notes      *string `json:"notes,omitempty"`

	// Денормализованные данные
	HouseName string `json:"houseName"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		HouseID:    b.HouseID,
		UserID:     b.UserID,
		CheckIn:    b.CheckIn.Format(domain.DateFormat),
		CheckOut:   b.CheckOut.Format(domain.DateFormat),
		Nights:     b.Range().Nights(),
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		Notes:      b.Notes,
		HouseName:  b.HouseName,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
