package users

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered возвращается при регистрации на занятый email
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Одинакова для неизвестного email и неверного пароля
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
