package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleConsultant = 2
	RoleViewer     = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

type UpdateUserRequest struct {
	ID     int     `json:"-"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
	RoleID *int    `json:"role_id"`
}

// ValidRole indica se o papel é admin, consultor ou leitor
func ValidRole(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleConsultant || roleID == RoleViewer
}
