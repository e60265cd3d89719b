package ports

import (
	"context"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Create and DeleteCascade are transactional units: a worker must never exist
// without its profile, and a partial cascade must never be committed.
type UserRepository interface {
	// Create inserts the user and, when profile is non-nil, the worker profile
	// in a single transaction. A username or email collision yields
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User, profile *domain.WorkerProfile) (*domain.User, error)
	// FindByIdentifier looks a user up by username or email.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// HasRole reports whether the user exists and holds the given role.
	HasRole(ctx context.Context, id int64, role domain.Role) (bool, error)
	// Update persists mutable account fields. A username or email collision
	// with another row yields domain.ErrUserExists.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the user row only. When dependent rows still reference
	// the user, the store rejects the delete and domain.ErrConflict is
	// returned with nothing mutated.
	Delete(ctx context.Context, id int64) error
	// DeleteCascade removes, in one transaction and in dependency order, the
	// user's hires, worker photos, worker services, worker profiles, and
	// finally the user row itself.
	DeleteCascade(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)
}
