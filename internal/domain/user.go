package domain

import "time"

// Role is the access level of a user
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleAdmin
}

// User is a site account
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the user has back-office access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
