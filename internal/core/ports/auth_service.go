package ports

import (
	"context"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Name           string
	Surname        string
	PersonalNumber string
	Username       string
	Email          string
	Password       string
	Role           string // raw, normalized case-insensitively by the service
}

type AuthService interface {
	// Register creates a user. When the normalized role is Worker, a default
	// empty worker profile is created in the same transaction.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login authenticates by username or email and returns a signed token.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
