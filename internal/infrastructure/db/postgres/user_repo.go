package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/admindash/auth-service/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isUniqueViolation is the single conflict-detection path: both the
// service's pre-check and the insert race funnel through
// domain.ErrEmailAlreadyExists, so messages cannot diverge under races.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		FullName:     ur.FullName,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		Role:         ur.Role,
		IsApproved:   ur.IsApproved,
		CreatedAt:    ur.CreatedAt,
	}
}

// ---------- auth.UserDirectory ----------

// GetByEmail returns the sanitized projection; password_hash is not even
// selected, mirroring a select:false column policy.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
SELECT id, full_name, email, role, is_approved, created_at
FROM users
WHERE email = $1
LIMIT 1;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&ur.ID, &ur.FullName, &ur.Email, &ur.Role, &ur.IsApproved, &ur.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// GetByEmailWithPassword is the only read that carries the secret hash.
func (r *UserRepo) GetByEmailWithPassword(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
SELECT id, full_name, email, password_hash, role, is_approved, created_at
FROM users
WHERE email = $1
LIMIT 1;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&ur.ID, &ur.FullName, &ur.Email, &ur.PasswordHash, &ur.Role, &ur.IsApproved, &ur.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
SELECT id, full_name, email, role, is_approved, created_at
FROM users
WHERE id = $1
LIMIT 1;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&ur.ID, &ur.FullName, &ur.Email, &ur.Role, &ur.IsApproved, &ur.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = normalizeEmail(u.Email)
	if u.ID == "" || u.Email == "" || u.PasswordHash == "" {
		return domain.User{}, domain.ErrInternal(errors.New("incomplete user record"))
	}
	if u.Role == "" {
		u.Role = domain.RoleAdmin
	}

	const q = `
INSERT INTO users (id, full_name, email, password_hash, role, is_approved)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, full_name, email, password_hash, role, is_approved, created_at;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Role, u.IsApproved,
	).Scan(
		&ur.ID, &ur.FullName, &ur.Email, &ur.PasswordHash, &ur.Role, &ur.IsApproved, &ur.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Approve(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
UPDATE users
SET is_approved = TRUE
WHERE id = $1
RETURNING id, full_name, email, role, is_approved, created_at;
`
	var ur userRow
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&ur.ID, &ur.FullName, &ur.Email, &ur.Role, &ur.IsApproved, &ur.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return toDomainUser(ur), nil
}
