package domain

import "time"

// UserRole enumerates operator roles.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOperator UserRole = "operator"
)

// ValidUserRole reports whether the value is a declared role.
func ValidUserRole(r UserRole) bool {
	return r == UserRoleAdmin || r == UserRoleOperator
}

// User is the domain model for operators who authenticate against the API.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
