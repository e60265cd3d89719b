package ports

import (
	"context"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// UpdateUserInput carries the mutable account fields an admin may edit.
type UpdateUserInput struct {
	Name           string
	Surname        string
	PersonalNumber string
	Username       string
	Email          string
	Role           string // raw, re-normalized by the service
}

// UserService defines admin-side account management, including the cascading
// removal that keeps the four dependent tables consistent.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	// Delete removes a user. Without force, the delete fails with
	// domain.ErrConflict when dependent rows still reference the user. With
	// force, hires, worker photos, worker services, and worker profiles are
	// removed with the user row as a single atomic unit.
	Delete(ctx context.Context, id int64, force bool) error
}
