package models

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// RegisterRequest регистрация пользователя
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Name     string  `json:"name" validate:"required,max=100"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateRoleRequest смена роли (админка)
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=guest admin"`
}

// ListUsersRequest пагинация списка пользователей
type ListUsersRequest struct {
	Limit  uint64
	Offset uint64
}

// UserResponse пользователь без хеша пароля
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func FromDomainUsers(list []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, FromDomainUser(u))
	}
	return resp
}
