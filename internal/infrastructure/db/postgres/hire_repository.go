package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// HireRepository implements ports.HireRepository on PostgreSQL.
type HireRepository struct {
	db *sqlx.DB
}

func NewHireRepository(db *sqlx.DB) *HireRepository {
	return &HireRepository{db: db}
}

const hireColumns = `id, client_id, worker_id, date, notes, status, idempotency_key, created_at`

func (r *HireRepository) Create(ctx context.Context, h *domain.Hire) (*domain.Hire, error) {
	var created domain.Hire
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO hires (client_id, worker_id, date, notes, status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+hireColumns,
		h.ClientID, h.WorkerID, h.Date, h.Notes, h.Status, h.IdempotencyKey,
	).StructScan(&created)
	if err != nil {
		// The partial unique index on idempotency_key trips when a key is
		// reused by a client other than its owner.
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert hire: %w", err)
	}
	return &created, nil
}

func (r *HireRepository) FindByID(ctx context.Context, id int64) (*domain.Hire, error) {
	var h domain.Hire
	err := r.db.GetContext(ctx, &h, `SELECT `+hireColumns+` FROM hires WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHireNotFound
		}
		return nil, fmt.Errorf("find hire: %w", err)
	}
	return &h, nil
}

func (r *HireRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Hire, error) {
	var h domain.Hire
	err := r.db.GetContext(ctx, &h, `SELECT `+hireColumns+` FROM hires WHERE idempotency_key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHireNotFound
		}
		return nil, fmt.Errorf("find hire by idempotency key: %w", err)
	}
	return &h, nil
}

func (r *HireRepository) ListAll(ctx context.Context) ([]domain.Hire, error) {
	return r.list(ctx, `SELECT `+hireColumns+` FROM hires ORDER BY created_at DESC`)
}

func (r *HireRepository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Hire, error) {
	return r.list(ctx, `SELECT `+hireColumns+` FROM hires WHERE worker_id = $1 ORDER BY created_at DESC`, workerID)
}

func (r *HireRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Hire, error) {
	return r.list(ctx, `SELECT `+hireColumns+` FROM hires WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
}

func (r *HireRepository) list(ctx context.Context, query string, args ...any) ([]domain.Hire, error) {
	hires := []domain.Hire{}
	if err := r.db.SelectContext(ctx, &hires, query, args...); err != nil {
		return nil, fmt.Errorf("list hires: %w", err)
	}
	return hires, nil
}

// DecideIfPending performs the one mutation path for hire status as a single
// conditional update. The WHERE guard on Pending serialises concurrent
// decisions: at most one caller sees a row updated.
func (r *HireRepository) DecideIfPending(ctx context.Context, id int64, status domain.HireStatus) (*domain.Hire, error) {
	var updated domain.Hire
	err := r.db.QueryRowxContext(ctx, `
		UPDATE hires SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING `+hireColumns,
		status, id, domain.StatusPending,
	).StructScan(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("decide hire: %w", err)
	}

	// No row matched: either the hire is gone or it was already decided.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, domain.ErrAlreadyProcessed
}

func (r *HireRepository) CountByStatusForClient(ctx context.Context, clientID int64) (ports.StatusCounts, error) {
	return r.countByStatus(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending')  AS pending,
			COUNT(*) FILTER (WHERE status = 'Accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
		FROM hires WHERE client_id = $1`, clientID)
}

func (r *HireRepository) CountByStatus(ctx context.Context) (ports.StatusCounts, error) {
	return r.countByStatus(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending')  AS pending,
			COUNT(*) FILTER (WHERE status = 'Accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
		FROM hires`)
}

func (r *HireRepository) countByStatus(ctx context.Context, query string, args ...any) (ports.StatusCounts, error) {
	var row struct {
		Pending  int64 `db:"pending"`
		Accepted int64 `db:"accepted"`
		Rejected int64 `db:"rejected"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return ports.StatusCounts{}, fmt.Errorf("count hires by status: %w", err)
	}
	return ports.StatusCounts{Pending: row.Pending, Accepted: row.Accepted, Rejected: row.Rejected}, nil
}

func (r *HireRepository) CountDistinctWorkersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(DISTINCT worker_id) FROM hires WHERE date >= $1`, since)
	if err != nil {
		return 0, fmt.Errorf("count active workers: %w", err)
	}
	return n, nil
}

func (r *HireRepository) CountByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM hires WHERE date >= $1 AND date < $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("count hires in range: %w", err)
	}
	return n, nil
}
