package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, password_hash, email_verified, account_id, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EmailVerified, &u.AccountID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, email_verified, account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	_, err := r.DB.Exec(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.EmailVerified, u.AccountID, time.Now())
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SetAccount attaches the user to an account, or detaches when accountID is nil.
func (r *UserRepository) SetAccount(ctx context.Context, userID string, accountID *string) error {
	query := `UPDATE users SET account_id=$1, updated_at=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, accountID, time.Now(), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) SetEmailVerified(ctx context.Context, userID string, at time.Time) error {
	tag, err := r.DB.Exec(ctx, `UPDATE users SET email_verified=$1, updated_at=$1 WHERE id=$2`, at, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// UpdateProfile sets the display name and, when email is non-empty, the new
// email with verification cleared.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID, name, email string) error {
	var tag pgconn.CommandTag
	var err error
	if email != "" {
		tag, err = r.DB.Exec(ctx, `UPDATE users SET name=$1, email=$2, email_verified=NULL, updated_at=$3 WHERE id=$4`, name, email, time.Now(), userID)
	} else {
		tag, err = r.DB.Exec(ctx, `UPDATE users SET name=$1, updated_at=$2 WHERE id=$3`, name, time.Now(), userID)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}
