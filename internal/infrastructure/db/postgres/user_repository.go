package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Klit-Bucinca/SkillHire/internal/core/domain"
)

// pq error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, surname, personal_number, username, email, password_hash, role, created_at`

// Create inserts the user and, for workers, the default profile in one
// transaction.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, profile *domain.WorkerProfile) (*domain.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var created domain.User
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (name, surname, personal_number, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		user.Name, user.Surname, user.PersonalNumber, user.Username, user.Email, user.PasswordHash, user.Role,
	).StructScan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if profile != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO worker_profiles (user_id, city, phone, years_experience, profile_photo)
			VALUES ($1, $2, $3, $4, $5)`,
			created.ID, profile.City, profile.Phone, profile.YearsExperience, profile.ProfilePhoto,
		)
		if err != nil {
			return nil, fmt.Errorf("insert worker profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &created, nil
}

// FindByIdentifier looks a user up by username or email.
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) HasRole(ctx context.Context, id int64, role domain.Role) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND role = $2)`, id, role)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	var updated domain.User
	err := r.db.QueryRowxContext(ctx, `
		UPDATE users
		SET name = $1, surname = $2, personal_number = $3, username = $4, email = $5, role = $6
		WHERE id = $7
		RETURNING `+userColumns,
		user.Name, user.Surname, user.PersonalNumber, user.Username, user.Email, user.Role, user.ID,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &updated, nil
}

// Delete removes the user row only. The foreign keys on hires and
// worker_profiles reject the delete while dependents exist, which surfaces as
// domain.ErrConflict with nothing mutated.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteCascade removes the user's dependents in dependency order, then the
// user row, all in one transaction. A failure at any step rolls the whole
// cascade back.
func (r *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		desc  string
		query string
	}{
		{"delete hires", `DELETE FROM hires WHERE client_id = $1 OR worker_id = $1`},
		{"delete worker photos", `DELETE FROM worker_photos
			WHERE worker_profile_id IN (SELECT id FROM worker_profiles WHERE user_id = $1)`},
		{"delete worker services", `DELETE FROM worker_services
			WHERE worker_profile_id IN (SELECT id FROM worker_profiles WHERE user_id = $1)`},
		{"delete worker profiles", `DELETE FROM worker_profiles WHERE user_id = $1`},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, id); err != nil {
			return fmt.Errorf("%s: %w", step.desc, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
