package menu

import "errors"

var (
	ErrCategoryNotFound = errors.New("menu category not found")
	ErrItemNotFound     = errors.New("menu item not found")

	// ErrCategoryNotEmpty возвращается при удалении категории с блюдами
	ErrCategoryNotEmpty = errors.New("menu category has items")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
