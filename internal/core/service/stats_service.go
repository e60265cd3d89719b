package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

type statsService struct {
	hires ports.HireRepository
	users ports.UserRepository
	now   func() time.Time
	log   zerolog.Logger
}

// NewStatsService returns a StatsService implementation. Aggregates are
// recomputed from the store on every call; there is no cache to invalidate.
func NewStatsService(hires ports.HireRepository, users ports.UserRepository, log zerolog.Logger) ports.StatsService {
	return &statsService{hires: hires, users: users, now: func() time.Time { return time.Now().UTC() }, log: log}
}

func (s *statsService) ClientStats(ctx context.Context, actor ports.Actor, requestedClientID int64) (*ports.ClientStats, error) {
	targetID := actor.ID
	if actor.IsAdmin() && requestedClientID != 0 {
		targetID = requestedClientID
	}

	ok, err := s.users.HasRole(ctx, targetID, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	counts, err := s.hires.CountByStatusForClient(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return &ports.ClientStats{
		Pending:  counts.Pending,
		Accepted: counts.Accepted,
		Rejected: counts.Rejected,
		Total:    counts.Total(),
	}, nil
}

func (s *statsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	now := s.now()

	counts, err := s.hires.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	usersTotal, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	activeWorkers, err := s.hires.CountDistinctWorkersSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	curr, err := s.hires.CountByDateRange(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, err
	}
	prev, err := s.hires.CountByDateRange(ctx, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &ports.AdminStats{
		Pending:          counts.Pending,
		Accepted:         counts.Accepted,
		Rejected:         counts.Rejected,
		TotalHires:       counts.Total(),
		AcceptanceRate:   acceptanceRate(counts.Accepted, counts.Rejected),
		UsersTotal:       usersTotal,
		ActiveWorkers30d: activeWorkers,
		TotalDelta7d:     weekOverWeekDelta(curr, prev),
	}, nil
}

// acceptanceRate is accepted / (accepted + rejected) * 100, with 0 when no
// hire has been decided yet.
func acceptanceRate(accepted, rejected int64) float64 {
	decided := accepted + rejected
	if decided == 0 {
		return 0
	}
	return float64(accepted) / float64(decided) * 100
}

// weekOverWeekDelta is (curr - prev) / prev * 100. A previous window of zero
// means any activity at all is reported as +100, and none as 0.
func weekOverWeekDelta(curr, prev int64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}
