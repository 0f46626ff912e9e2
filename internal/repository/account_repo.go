package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	DB *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	query := `INSERT INTO accounts (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, query, a.ID, a.Name, a.OwnerID, time.Now())
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account
	query := `SELECT id, name, owner_id, created_at FROM accounts WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.OwnerID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, err
	}
	return &a, nil
}

// Members lists every user attached to the account, owner included.
func (r *AccountRepository) Members(ctx context.Context, accountID string) ([]model.Member, error) {
	query := `SELECT id, name, email FROM users WHERE account_id=$1 ORDER BY created_at, id`
	rows, err := r.DB.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *AccountRepository) Rename(ctx context.Context, accountID, name string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE accounts SET name=$1 WHERE id=$2`, name, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("account not found")
	}
	return nil
}

// DeleteCascade removes the account and everything under it in one
// transaction: order items, orders, member attachments, the account row, and
// finally the owner user. Partial completion would orphan data, so the whole
// sequence commits or rolls back together.
func (r *AccountRepository) DeleteCascade(ctx context.Context, accountID, ownerID string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	steps := []struct {
		query string
		args  []any
	}{
		{`DELETE FROM order_items USING orders WHERE order_items.order_id = orders.id AND orders.account_id = $1`, []any{accountID}},
		{`DELETE FROM orders WHERE account_id = $1`, []any{accountID}},
		{`UPDATE users SET account_id = NULL WHERE account_id = $1`, []any{accountID}},
		{`DELETE FROM accounts WHERE id = $1`, []any{accountID}},
		{`DELETE FROM email_verifications WHERE user_id = $1`, []any{ownerID}},
		{`DELETE FROM users WHERE id = $1`, []any{ownerID}},
	}
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step.query, step.args...); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
