package ports

import (
	"context"
	"time"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// CreateHireInput carries the data a client submits when requesting work.
// The client identity is never part of the input: it is always taken from the
// actor so one client cannot create hires on behalf of another.
type CreateHireInput struct {
	WorkerID       int64
	Date           time.Time
	Notes          string
	IdempotencyKey string // optional; replays return the original hire
}

// HireService defines use-case operations for the hire lifecycle.
type HireService interface {
	// Create persists a new Pending hire for the acting client. The returned
	// bool is true when the idempotency key matched an earlier submission and
	// the original hire was returned instead of creating a new one.
	Create(ctx context.Context, actor Actor, in CreateHireInput) (*domain.Hire, bool, error)
	// Get fetches a single hire by id. Any authenticated user may read any
	// hire; there is deliberately no ownership check here.
	Get(ctx context.Context, id int64) (*domain.Hire, error)
	ListAll(ctx context.Context) ([]domain.Hire, error)
	// ListForWorker returns the hires assigned to workerID. Non-admin actors
	// may only request their own id.
	ListForWorker(ctx context.Context, actor Actor, workerID int64) ([]domain.Hire, error)
	// ListForClient returns the hires created by clientID. Non-admin actors
	// may only request their own id.
	ListForClient(ctx context.Context, actor Actor, clientID int64) ([]domain.Hire, error)
	// UpdateStatus moves a Pending hire to Accepted or Rejected. Only the
	// assigned worker or an admin may decide, and only once.
	UpdateStatus(ctx context.Context, actor Actor, hireID int64, status domain.HireStatus) (*domain.Hire, error)
}
