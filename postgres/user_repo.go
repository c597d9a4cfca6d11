package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/simfrisk/SleepJournal/users"
)

var _ users.UserRepo = (*UserRepo)(nil)

// UserRepo is the postgres implementation of users.UserRepo.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Insert(ctx context.Context, user *users.User) (*users.User, error) {
	query := `INSERT INTO users (email, password_hash, is_active, email_verified, created_at, updated_at, last_login_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	stored := *user
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.IsActive, user.EmailVerified,
		user.CreatedAt, user.UpdatedAt, user.LastLoginAt).Scan(&stored.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[UserRepo.Insert] db error")
	}
	return &stored, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `SELECT id, email, password_hash, is_active, email_verified, created_at, updated_at, last_login_at
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `SELECT id, email, password_hash, is_active, email_verified, created_at, updated_at, last_login_at
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return errors.Wrap(err, "[UserRepo.UpdateLastLogin] db error")
	}
	return nil
}

func (r *UserRepo) scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive,
		&user.EmailVerified, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, errors.Wrap(err, "[UserRepo] db error")
	}
	return user, nil
}
