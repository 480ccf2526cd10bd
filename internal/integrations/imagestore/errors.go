package imagestore

import "errors"

var (
	// ErrNotConfigured возвращается, когда объектное хранилище не настроено
	ErrNotConfigured = errors.New("imagestore: storage is not configured")

	ErrInvalidInput = errors.New("imagestore: invalid input")
	ErrBucket       = errors.New("imagestore: bucket error")
	ErrUpload       = errors.New("imagestore: upload failed")
)
