package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of capabilities a user can hold. It is stored as a
// canonical string and every authorization decision downstream keys off it.
type Role string

const (
	RoleClient Role = "Client"
	RoleWorker Role = "Worker"
	RoleAdmin  Role = "Admin"
)

var ErrInvalidRole = errors.New("role must be Client, Worker, or Admin")
var ErrInvalidRegistration = errors.New("username, email, and password are required")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserExists = errors.New("username or email already exists")
var ErrUserNotFound = errors.New("user not found")

// ParseRole normalizes a caller-supplied role string case-insensitively to one
// of the three canonical roles. Anything else is rejected.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "client":
		return RoleClient, nil
	case "worker":
		return RoleWorker, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// User models a registered account. Role is an immutable business fact outside
// of admin edits.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Surname        string    `json:"surname" db:"surname"`
	PersonalNumber string    `json:"personal_number" db:"personal_number"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           Role      `json:"role" db:"role"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
