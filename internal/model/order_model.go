package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// statusFlow is the only legal progression. delivered is terminal; there is
// no cancel or reverse transition.
var statusFlow = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Next returns the successor status. ok is false at delivered.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	next, ok = statusFlow[s]
	return next, ok
}

type OrderType string

const (
	TypeDelivery OrderType = "delivery"
	TypePickup   OrderType = "pickup"
)

func (t OrderType) Valid() bool {
	return t == TypeDelivery || t == TypePickup
}

// Order represents an entry in the orders table
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	OrderType    OrderType       `json:"orderType"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	AccountID    string          `json:"accountId,omitempty"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// OrderItem represents a row in the order_items table. Price is per unit.
type OrderItem struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"orderId,omitempty"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ItemsTotal sums price*quantity over items. Seed data carries preset totals
// that may diverge from this sum; newly created orders always use it.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// OrderBuckets is the four-way status partition the dashboard renders.
type OrderBuckets struct {
	Pending   []Order `json:"pending"`
	Preparing []Order `json:"preparing"`
	Ready     []Order `json:"ready"`
	Delivered []Order `json:"delivered"`
}

// GroupByStatus partitions orders by status, preserving input order within
// each bucket.
func GroupByStatus(orders []Order) OrderBuckets {
	var b OrderBuckets
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			b.Pending = append(b.Pending, o)
		case StatusPreparing:
			b.Preparing = append(b.Preparing, o)
		case StatusReady:
			b.Ready = append(b.Ready, o)
		case StatusDelivered:
			b.Delivered = append(b.Delivered, o)
		}
	}
	return b
}
