package domain

import (
	"time"

	"github.com/m04kA/SMC-ResortService/pkg/types"
)

// MenuCategory groups menu items (breakfast, grill, drinks...)
type MenuCategory struct {
	ID        int64
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem is a dish or drink on the restaurant menu
type MenuItem struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	Price       float64
	WeightGrams *int
	ImageURL    *string
	IsAvailable bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuSection is a category with its items, as shown to guests
type MenuSection struct {
	Category MenuCategory
	Items    []MenuItem
}

// TableReservationStatus represents the status of a restaurant table reservation
type TableReservationStatus string

const (
	TableReservationPending   TableReservationStatus = "pending"
	TableReservationConfirmed TableReservationStatus = "confirmed"
	TableReservationCancelled TableReservationStatus = "cancelled"
)

// Valid reports whether s is a known table reservation status
func (s TableReservationStatus) Valid() bool {
	switch s {
	case TableReservationPending, TableReservationConfirmed, TableReservationCancelled:
		return true
	}
	return false
}

// TableReservation is a restaurant table request
type TableReservation struct {
	ID        int64
	UserID    *int64
	Date      time.Time
	Time      types.TimeString
	Guests    int
	Name      string
	Phone     string
	Email     *string
	Comment   *string
	Status    TableReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still holds seats
func (r *TableReservation) IsActive() bool {
	return r.Status != TableReservationCancelled
}

// TableReservationsFilter фильтр для списка брони столиков
type TableReservationsFilter struct {
	Date   *time.Time
	Status *TableReservationStatus
	Limit  uint64
	Offset uint64
}

// GroupMenu groups items under their categories keeping the category order.
// Categories without items are skipped.
func GroupMenu(categories []*MenuCategory, items []*MenuItem) []MenuSection {
	byCategory := make(map[int64][]MenuItem, len(categories))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], *item)
	}

	sections := make([]MenuSection, 0, len(categories))
	for _, c := range categories {
		categoryItems := byCategory[c.ID]
		if len(categoryItems) == 0 {
			continue
		}
		sections = append(sections, MenuSection{Category: *c, Items: categoryItems})
	}
	return sections
}
