package ports

import "context"

// ClientStats is the per-client hire breakdown. A client with no hires gets
// all zeroes, not an error.
type ClientStats struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// AdminStats is the marketplace-wide dashboard view. All window calculations
// are evaluated against the UTC instant of the call; nothing is cached.
type AdminStats struct {
	Pending          int64   `json:"pending"`
	Accepted         int64   `json:"accepted"`
	Rejected         int64   `json:"rejected"`
	TotalHires       int64   `json:"totalHires"`
	AcceptanceRate   float64 `json:"acceptanceRate"`
	UsersTotal       int64   `json:"usersTotal"`
	ActiveWorkers30d int64   `json:"activeWorkers30d"`
	TotalDelta7d     float64 `json:"totalDelta7d"`
}

// StatsService computes read-only aggregates over hire records.
type StatsService interface {
	// ClientStats targets requestedClientID when the actor is an admin and
	// supplied one (non-zero), the actor's own id otherwise. The target must
	// be a Client.
	ClientStats(ctx context.Context, actor Actor, requestedClientID int64) (*ClientStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}
