package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
	"github.com/Klit-Bucinca/SkillHire/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository. It also tracks the
// dependent tables so cascade behaviour can be asserted end to end.
type stubUserRepo struct {
	nextID   int64
	users    map[int64]*domain.User
	profiles []domain.WorkerProfile
	hires    *stubHireRepo // shared so the cascade can reach hire rows
	photos   []domain.WorkerPhoto
	services []domain.WorkerService
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User, profile *domain.WorkerProfile) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	if profile != nil {
		p := *profile
		p.ID = created.ID
		p.UserID = created.ID
		r.profiles = append(r.profiles, p)
	}
	return created, nil
}

func (r *stubUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) HasRole(_ context.Context, id int64, role domain.Role) (bool, error) {
	u, ok := r.users[id]
	return ok && u.Role == role, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && (existing.Username == user.Username || existing.Email == user.Email) {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) referenced(id int64) bool {
	if r.hires != nil {
		for _, h := range r.hires.hires {
			if h.ClientID == id || h.WorkerID == id {
				return true
			}
		}
	}
	for _, p := range r.profiles {
		if p.UserID == id {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	if r.referenced(id) {
		return domain.ErrConflict
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) DeleteCascade(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}

	if r.hires != nil {
		kept := r.hires.hires[:0]
		for _, h := range r.hires.hires {
			if h.ClientID != id && h.WorkerID != id {
				kept = append(kept, h)
			}
		}
		r.hires.hires = kept
	}

	profileIDs := make(map[int64]bool)
	keptProfiles := r.profiles[:0]
	for _, p := range r.profiles {
		if p.UserID == id {
			profileIDs[p.ID] = true
		} else {
			keptProfiles = append(keptProfiles, p)
		}
	}

	keptPhotos := r.photos[:0]
	for _, ph := range r.photos {
		if !profileIDs[ph.WorkerProfileID] {
			keptPhotos = append(keptPhotos, ph)
		}
	}
	keptServices := r.services[:0]
	for _, ws := range r.services {
		if !profileIDs[ws.WorkerProfileID] {
			keptServices = append(keptServices, ws)
		}
	}

	r.photos = keptPhotos
	r.services = keptServices
	r.profiles = keptProfiles
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// addUser seeds a user with a fixed id, bypassing Create.
func (r *stubUserRepo) addUser(id int64, role domain.Role) *domain.User {
	u := &domain.User{ID: id, Username: "user" + strconv.FormatInt(id, 10), Role: role}
	r.users[id] = u
	if id > r.nextID {
		r.nextID = id
	}
	return u
}

// stubHireRepo is an in-memory ports.HireRepository.
type stubHireRepo struct {
	nextID int64
	hires  []domain.Hire
}

func newStubHireRepo() *stubHireRepo {
	return &stubHireRepo{}
}

func (r *stubHireRepo) Create(_ context.Context, h *domain.Hire) (*domain.Hire, error) {
	r.nextID++
	created := *h
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.hires = append(r.hires, created)
	return &created, nil
}

func (r *stubHireRepo) FindByID(_ context.Context, id int64) (*domain.Hire, error) {
	for _, h := range r.hires {
		if h.ID == id {
			clone := h
			return &clone, nil
		}
	}
	return nil, domain.ErrHireNotFound
}

func (r *stubHireRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Hire, error) {
	for _, h := range r.hires {
		if h.IdempotencyKey != nil && *h.IdempotencyKey == key {
			clone := h
			return &clone, nil
		}
	}
	return nil, domain.ErrHireNotFound
}

func (r *stubHireRepo) ListAll(_ context.Context) ([]domain.Hire, error) {
	return append([]domain.Hire(nil), r.hires...), nil
}

func (r *stubHireRepo) ListByWorker(_ context.Context, workerID int64) ([]domain.Hire, error) {
	out := []domain.Hire{}
	for _, h := range r.hires {
		if h.WorkerID == workerID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHireRepo) ListByClient(_ context.Context, clientID int64) ([]domain.Hire, error) {
	out := []domain.Hire{}
	for _, h := range r.hires {
		if h.ClientID == clientID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHireRepo) DecideIfPending(_ context.Context, id int64, status domain.HireStatus) (*domain.Hire, error) {
	for i := range r.hires {
		if r.hires[i].ID == id {
			if r.hires[i].Status != domain.StatusPending {
				return nil, domain.ErrAlreadyProcessed
			}
			r.hires[i].Status = status
			clone := r.hires[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrHireNotFound
}

func (r *stubHireRepo) CountByStatusForClient(_ context.Context, clientID int64) (ports.StatusCounts, error) {
	var c ports.StatusCounts
	for _, h := range r.hires {
		if h.ClientID != clientID {
			continue
		}
		c = tally(c, h.Status)
	}
	return c, nil
}

func (r *stubHireRepo) CountByStatus(_ context.Context) (ports.StatusCounts, error) {
	var c ports.StatusCounts
	for _, h := range r.hires {
		c = tally(c, h.Status)
	}
	return c, nil
}

func tally(c ports.StatusCounts, s domain.HireStatus) ports.StatusCounts {
	switch s {
	case domain.StatusPending:
		c.Pending++
	case domain.StatusAccepted:
		c.Accepted++
	case domain.StatusRejected:
		c.Rejected++
	}
	return c
}

func (r *stubHireRepo) CountDistinctWorkersSince(_ context.Context, since time.Time) (int64, error) {
	seen := make(map[int64]bool)
	for _, h := range r.hires {
		if !h.Date.Before(since) {
			seen[h.WorkerID] = true
		}
	}
	return int64(len(seen)), nil
}

func (r *stubHireRepo) CountByDateRange(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, h := range r.hires {
		if !h.Date.Before(from) && h.Date.Before(to) {
			n++
		}
	}
	return n, nil
}

// stubDedup is an in-memory DedupChecker.
type stubDedup struct {
	seen map[string]bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, key string) (bool, error) {
	return d.seen[key], nil
}

func (d *stubDedup) Mark(_ context.Context, key string) error {
	d.seen[key] = true
	return nil
}
