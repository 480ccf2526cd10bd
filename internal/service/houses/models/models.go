package models

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// HouseRequest данные дома для создания
type HouseRequest struct {
	Name              string   `json:"name" validate:"required,max=200"`
	Description       string   `json:"description"`
	Capacity          int      `json:"capacity" validate:"min=1,max=20"`
	BaseRate          float64  `json:"baseRate" validate:"gt=0"`
	WeekendMultiplier *float64 `json:"weekendMultiplier,omitempty" validate:"omitempty,gte=1"`
	Amenities         []string `json:"amenities"`
	IsActive          *bool    `json:"isActive,omitempty"` // по умолчанию true
}

// UpdateHouseRequest частичное обновление дома, nil-поля не меняются
type UpdateHouseRequest struct {
	Name              *string   `json:"name,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Capacity          *int      `json:"capacity,omitempty"`
	BaseRate          *float64  `json:"baseRate,omitempty"`
	WeekendMultiplier *float64  `json:"weekendMultiplier,omitempty"`
	Amenities         *[]string `json:"amenities,omitempty"`
	IsActive          *bool     `json:"isActive,omitempty"`
}

// Apply применяет изменения к дому
func (r *UpdateHouseRequest) Apply(h *domain.House) {
	if r.Name != nil {
		h.Name = *r.Name
	}
	if r.Description != nil {
		h.Description = *r.Description
	}
	if r.Capacity != nil {
		h.Capacity = *r.Capacity
	}
	if r.BaseRate != nil {
		h.BaseRate = *r.BaseRate
	}
	if r.WeekendMultiplier != nil {
		h.WeekendMultiplier = r.WeekendMultiplier
	}
	if r.Amenities != nil {
		h.Amenities = *r.Amenities
	}
	if r.IsActive != nil {
		h.IsActive = *r.IsActive
	}
}

// UploadImageRequest картинка дома
type UploadImageRequest struct {
	HouseID     int64
	FileName    string
	ContentType string
	Size        int64
}

// HouseResponse ответ с данными дома
type HouseResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Capacity          int       `json:"capacity"`
	BaseRate          float64   `json:"baseRate"`
	WeekendRate       float64   `json:"weekendRate"`
	WeekendMultiplier float64   `json:"weekendMultiplier"`
	Amenities         []string  `json:"amenities"`
	ImageURL          *string   `json:"imageUrl,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// HouseListResponse ответ со списком домов
type HouseListResponse struct {
	Houses []HouseResponse `json:"houses"`
}

// FromDomainHouse конвертирует domain модель в DTO
// defaultMultiplier используется, если у дома нет собственного
func FromDomainHouse(h *domain.House, defaultMultiplier float64) *HouseResponse {
	if h == nil {
		return nil
	}

	rule := h.PriceRule(defaultMultiplier)
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &HouseResponse{
		ID:                h.ID,
		Name:              h.Name,
		Description:       h.Description,
		Capacity:          h.Capacity,
		BaseRate:          h.BaseRate,
		WeekendRate:       rule.DayPrice(saturday),
		WeekendMultiplier: rule.WeekendMultiplier,
		Amenities:         amenities,
		ImageURL:          h.ImageURL,
		IsActive:          h.IsActive,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	}
}

// FromDomainHouseList конвертирует список domain моделей в DTO
func FromDomainHouseList(houses []*domain.House, defaultMultiplier float64) *HouseListResponse {
	resp := &HouseListResponse{Houses: make([]HouseResponse, 0, len(houses))}
	for _, h := range houses {
		if hr := FromDomainHouse(h, defaultMultiplier); hr != nil {
			resp.Houses = append(resp.Houses, *hr)
		}
	}
	return resp
}

// 6 января 2024 - суббота
var saturday = time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
