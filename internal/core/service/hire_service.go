package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// DedupChecker abstracts the idempotency fast path (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type hireService struct {
	hires ports.HireRepository
	users ports.UserRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewHireService returns a HireService implementation.
func NewHireService(hires ports.HireRepository, users ports.UserRepository, dedup DedupChecker, log zerolog.Logger) ports.HireService {
	return &hireService{hires: hires, users: users, dedup: dedup, log: log}
}

// Create persists a new Pending hire for the acting client. The client id is
// always the actor's own id, never caller-supplied.
func (s *hireService) Create(ctx context.Context, actor ports.Actor, in ports.CreateHireInput) (*domain.Hire, bool, error) {
	if in.IdempotencyKey != "" {
		if dup, err := s.dedup.IsDuplicate(ctx, in.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("dedup check failed, falling through to store")
		} else if dup {
			existing, err := s.hires.FindByIdempotencyKey(ctx, in.IdempotencyKey)
			if err == nil && existing.ClientID == actor.ID {
				s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("hire_id", existing.ID).Msg("idempotent replay")
				return existing, true, nil
			}
		}
		// The store remains authoritative when the fast path misses. A key
		// only replays for the client that created it; anyone else falls
		// through to a fresh insert and the unique index decides.
		if existing, err := s.hires.FindByIdempotencyKey(ctx, in.IdempotencyKey); err == nil && existing.ClientID == actor.ID {
			return existing, true, nil
		}
	}

	ok, err := s.users.HasRole(ctx, in.WorkerID, domain.RoleWorker)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, domain.ErrWorkerNotFound
	}

	hire := &domain.Hire{
		ClientID: actor.ID,
		WorkerID: in.WorkerID,
		Date:     in.Date,
		Status:   domain.StatusPending,
	}
	if in.Notes != "" {
		notes := in.Notes
		hire.Notes = &notes
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		hire.IdempotencyKey = &key
	}

	created, err := s.hires.Create(ctx, hire)
	if err != nil {
		s.log.Error().Err(err).Int64("client_id", actor.ID).Int64("worker_id", in.WorkerID).Msg("failed to create hire")
		return nil, false, err
	}

	if in.IdempotencyKey != "" {
		if markErr := s.dedup.Mark(ctx, in.IdempotencyKey); markErr != nil {
			s.log.Warn().Err(markErr).Str("idempotency_key", in.IdempotencyKey).Msg("failed to set dedup key")
		}
	}

	s.log.Info().Int64("hire_id", created.ID).Int64("client_id", actor.ID).Int64("worker_id", in.WorkerID).Msg("hire created")

	return created, false, nil
}

func (s *hireService) Get(ctx context.Context, id int64) (*domain.Hire, error) {
	return s.hires.FindByID(ctx, id)
}

func (s *hireService) ListAll(ctx context.Context) ([]domain.Hire, error) {
	return s.hires.ListAll(ctx)
}

func (s *hireService) ListForWorker(ctx context.Context, actor ports.Actor, workerID int64) ([]domain.Hire, error) {
	if !actor.IsAdmin() && actor.ID != workerID {
		return nil, domain.ErrForbidden
	}
	return s.hires.ListByWorker(ctx, workerID)
}

func (s *hireService) ListForClient(ctx context.Context, actor ports.Actor, clientID int64) ([]domain.Hire, error) {
	if !actor.IsAdmin() && actor.ID != clientID {
		return nil, domain.ErrForbidden
	}
	return s.hires.ListByClient(ctx, clientID)
}

// UpdateStatus moves a Pending hire into a terminal state. The write itself is
// a conditional update guarded on the status still being Pending, so two
// concurrent decisions can never both succeed.
func (s *hireService) UpdateStatus(ctx context.Context, actor ports.Actor, hireID int64, status domain.HireStatus) (*domain.Hire, error) {
	hire, err := s.hires.FindByID(ctx, hireID)
	if err != nil {
		return nil, err
	}

	if hire.WorkerID != actor.ID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	// A hire that already left Pending is reported as processed no matter
	// what status the caller asked for.
	if hire.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	if !status.IsDecision() || !hire.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.hires.DecideIfPending(ctx, hireID, status)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			// Lost the race to a concurrent decision.
			s.log.Info().Int64("hire_id", hireID).Msg("concurrent decision lost")
		}
		return nil, err
	}

	s.log.Info().Int64("hire_id", hireID).Str("status", string(status)).Int64("actor_id", actor.ID).Msg("hire decided")

	return updated, nil
}
