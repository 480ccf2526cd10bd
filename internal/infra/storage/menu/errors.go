package menu

import "errors"

var (
	ErrCategoryNotFound = errors.New("menu.repository: category not found")
	ErrItemNotFound     = errors.New("menu.repository: item not found")

	// ErrCategoryNotEmpty возвращается при удалении категории, в которой есть блюда
	ErrCategoryNotEmpty = errors.New("menu.repository: category has items")

	ErrBuildQuery = errors.New("menu.repository: failed to build query")
	ErrExecQuery  = errors.New("menu.repository: failed to execute query")
	ErrScanRow    = errors.New("menu.repository: failed to scan row")
)
