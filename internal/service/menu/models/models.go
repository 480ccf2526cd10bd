package models

import (
	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// CategoryRequest создание и обновление категории
type CategoryRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	SortOrder int    `json:"sortOrder"`
}

// ItemRequest создание и обновление позиции меню
type ItemRequest struct {
	CategoryID  int64   `json:"categoryId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	WeightGrams *int    `json:"weightGrams,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"` // по умолчанию true
	SortOrder   int     `json:"sortOrder"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ItemRequest) ToDomain() *domain.MenuItem {
	return &domain.MenuItem{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		WeightGrams: r.WeightGrams,
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable == nil || *r.IsAvailable,
		SortOrder:   r.SortOrder,
	}
}

// CategoryResponse категория меню
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// ItemResponse позиция меню
type ItemResponse struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"categoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	WeightGrams *int    `json:"weightGrams,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	SortOrder   int     `json:"sortOrder"`
}

// SectionResponse категория с позициями
type SectionResponse struct {
	Category CategoryResponse `json:"category"`
	Items    []ItemResponse   `json:"items"`
}

// MenuResponse меню ресторана
type MenuResponse struct {
	Sections []SectionResponse `json:"sections"`
}

func FromDomainCategory(c *domain.MenuCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder}
}

func FromDomainItem(i *domain.MenuItem) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		CategoryID:  i.CategoryID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		WeightGrams: i.WeightGrams,
		ImageURL:    i.ImageURL,
		IsAvailable: i.IsAvailable,
		SortOrder:   i.SortOrder,
	}
}

func FromDomainCategories(categories []*domain.MenuCategory) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, FromDomainCategory(c))
	}
	return resp
}

func FromDomainItems(items []*domain.MenuItem) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, FromDomainItem(i))
	}
	return resp
}

// FromDomainSections конвертирует сгруппированное меню
func FromDomainSections(sections []domain.MenuSection) *MenuResponse {
	resp := &MenuResponse{Sections: make([]SectionResponse, 0, len(sections))}
	for i := range sections {
		section := SectionResponse{
			Category: FromDomainCategory(&sections[i].Category),
			Items:    make([]ItemResponse, 0, len(sections[i].Items)),
		}
		for j := range sections[i].Items {
			section.Items = append(section.Items, FromDomainItem(&sections[i].Items[j]))
		}
		resp.Sections = append(resp.Sections, section)
	}
	return resp
}
