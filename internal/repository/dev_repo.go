package repository

import (
	"context"

	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DevRepository backs the dev-only reset endpoint. Nothing here is reachable
// in production.
type DevRepository struct {
	DB *pgxpool.Pool
}

func NewDevRepository(db *pgxpool.Pool) *DevRepository {
	return &DevRepository{DB: db}
}

func (r *DevRepository) AccountExists(ctx context.Context, accountID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE id=$1)`
	if err := r.DB.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ResetAccountOrders replaces the account's orders with the given seed set in
// one transaction.
func (r *DevRepository) ResetAccountOrders(ctx context.Context, accountID string, orders []model.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items USING orders WHERE order_items.order_id = orders.id AND orders.account_id = $1`, accountID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE account_id = $1`, accountID); err != nil {
		return err
	}
	for i := range orders {
		if err := insertOrderTx(ctx, tx, &orders[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ResetAll clears every table, children before parents.
func (r *DevRepository) ResetAll(ctx context.Context) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM email_verifications`,
		`DELETE FROM order_items`,
		`DELETE FROM orders`,
		`UPDATE users SET account_id = NULL`,
		`DELETE FROM accounts`,
		`DELETE FROM users`,
	} {
		if _, err := tx.Exec(ctx, query); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
