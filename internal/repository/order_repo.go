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

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `id, customer_name, order_type, status, total, account_id, created_at, updated_at`

// ListByAccount returns the account's orders with their items, oldest first.
func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE account_id=$1 ORDER BY created_at, id`
	rows, err := r.DB.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	index := map[string]int{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.OrderType, &o.Status, &o.Total, &o.AccountID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT oi.id, oi.order_id, oi.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.account_id=$1
		ORDER BY oi.id
	`
	itemRows, err := r.DB.Query(ctx, itemQuery, accountID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it model.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	var o model.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(&o.ID, &o.CustomerName, &o.OrderType, &o.Status, &o.Total, &o.AccountID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, order_id, name, quantity, price FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create inserts the order and its items atomically.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertOrderTx(ctx, tx, o); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertOrderTx(ctx context.Context, tx pgx.Tx, o *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, order_type, status, total, account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.Exec(ctx, query, o.ID, o.CustomerName, o.OrderType, o.Status, o.Total, o.AccountID, o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, name, quantity, price) VALUES ($1, $2, $3, $4, $5)`,
			it.ID, o.ID, it.Name, it.Quantity, it.Price,
		); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus persists the new status and returns the refreshed order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`, status, time.Now(), orderID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound("order not found")
	}
	return r.GetByID(ctx, orderID)
}
