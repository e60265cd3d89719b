package ports

import (
	"context"
	"time"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// StatusCounts groups hire counts by lifecycle state.
type StatusCounts struct {
	Pending  int64
	Accepted int64
	Rejected int64
}

// Total is the sum across all states.
func (c StatusCounts) Total() int64 {
	return c.Pending + c.Accepted + c.Rejected
}

// HireRepository defines persistence operations for hire requests.
type HireRepository interface {
	Create(ctx context.Context, h *domain.Hire) (*domain.Hire, error)
	FindByID(ctx context.Context, id int64) (*domain.Hire, error)
	// FindByIdempotencyKey retrieves the hire created under the given key, or
	// domain.ErrHireNotFound when the key has never been used.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Hire, error)
	ListAll(ctx context.Context) ([]domain.Hire, error)
	ListByWorker(ctx context.Context, workerID int64) ([]domain.Hire, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Hire, error)
	// DecideIfPending atomically writes the terminal status, guarded by the
	// current status still being Pending. When the guard fails on an existing
	// hire it returns domain.ErrAlreadyProcessed, so two concurrent decisions
	// can never both succeed.
	DecideIfPending(ctx context.Context, id int64, status domain.HireStatus) (*domain.Hire, error)

	// Read-side aggregates. Computed per call, never cached.
	CountByStatusForClient(ctx context.Context, clientID int64) (StatusCounts, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
	CountDistinctWorkersSince(ctx context.Context, since time.Time) (int64, error)
	// CountByDateRange counts hires whose date falls in [from, to).
	CountByDateRange(ctx context.Context, from, to time.Time) (int64, error)
}
