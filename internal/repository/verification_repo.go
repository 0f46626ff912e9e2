package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VerificationRepository struct {
	db *pgxpool.Pool
}

func NewVerificationRepository(db *pgxpool.Pool) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, userID, token string, exp time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO email_verifications (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, token, userID, exp)
	return err
}

// GetUserID resolves an unexpired token to its user.
func (r *VerificationRepository) GetUserID(ctx context.Context, token string) (string, error) {
	var userID string
	err := r.db.QueryRow(ctx, `
		SELECT user_id FROM email_verifications
		WHERE token = $1 AND expires_at > now()
	`, token).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.NotFound("invalid or expired token")
	}
	return userID, err
}

func (r *VerificationRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM email_verifications WHERE token = $1`, token)
	return err
}

// DeleteForUser drops any outstanding tokens, used before re-issuing after an
// email change.
func (r *VerificationRepository) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM email_verifications WHERE user_id = $1`, userID)
	return err
}
