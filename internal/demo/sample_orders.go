// Package demo holds the static order data used when the live store is
// unreachable, plus the seed set for the dev reset endpoint. Shapes mirror
// live orders exactly.
package demo

import (
	"strconv"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sampleItem struct {
	name     string
	quantity int
	price    string
}

type sampleOrder struct {
	customerName string
	orderType    model.OrderType
	status       model.OrderStatus
	total        string
	createdAgo   time.Duration
	updatedAgo   time.Duration
	items        []sampleItem
}

// Totals are preset and occasionally drift from the item sums. That drift is
// tolerated for demo/seed data; only newly created orders recompute.
var samples = []sampleOrder{
	{
		customerName: "Alex Johnson", orderType: model.TypeDelivery, status: model.StatusPending,
		total: "42.5", createdAgo: 15 * time.Minute, updatedAgo: 15 * time.Minute,
		items: []sampleItem{
			{"Margherita Pizza", 2, "15.99"},
			{"Caesar Salad", 1, "8.99"},
			{"Garlic Bread", 1, "5.99"},
		},
	},
	{
		customerName: "Sarah Chen", orderType: model.TypePickup, status: model.StatusPreparing,
		total: "28.75", createdAgo: 30 * time.Minute, updatedAgo: 10 * time.Minute,
		items: []sampleItem{
			{"Pepperoni Pizza", 1, "18.99"},
			{"Buffalo Wings", 1, "9.76"},
		},
	},
	{
		customerName: "Mike Rodriguez", orderType: model.TypeDelivery, status: model.StatusReady,
		total: "65.25", createdAgo: 45 * time.Minute, updatedAgo: 5 * time.Minute,
		items: []sampleItem{
			{"Supreme Pizza", 2, "22.99"},
			{"Chicken Alfredo", 1, "16.99"},
			{"Tiramisu", 2, "6.99"},
		},
	},
	{
		customerName: "Emily Davis", orderType: model.TypePickup, status: model.StatusDelivered,
		total: "19.99", createdAgo: time.Hour, updatedAgo: 20 * time.Minute,
		items: []sampleItem{
			{"Hawaiian Pizza", 1, "19.99"},
		},
	},
	{
		customerName: "James Wilson", orderType: model.TypeDelivery, status: model.StatusPending,
		total: "34.75", createdAgo: 5 * time.Minute, updatedAgo: 5 * time.Minute,
		items: []sampleItem{
			{"BBQ Chicken Pizza", 1, "20.99"},
			{"Greek Salad", 1, "7.99"},
			{"Soda", 2, "2.99"},
		},
	},
}

var seeds = []sampleOrder{
	{
		customerName: "Alex Johnson", orderType: model.TypeDelivery, status: model.StatusPending, total: "42.5",
		items: []sampleItem{{"Margherita Pizza", 2, "15.99"}, {"Caesar Salad", 1, "8.99"}, {"Garlic Bread", 1, "5.99"}},
	},
	{
		customerName: "Sarah Chen", orderType: model.TypePickup, status: model.StatusPreparing, total: "28.75",
		items: []sampleItem{{"Pepperoni Pizza", 1, "18.99"}, {"Buffalo Wings", 1, "9.76"}},
	},
	{
		customerName: "Mike Rodriguez", orderType: model.TypeDelivery, status: model.StatusReady, total: "65.25",
		items: []sampleItem{{"Supreme Pizza", 2, "22.99"}, {"Chicken Alfredo", 1, "16.99"}, {"Tiramisu", 2, "6.99"}},
	},
	{
		customerName: "Emily Davis", orderType: model.TypePickup, status: model.StatusDelivered, total: "19.99",
		items: []sampleItem{{"Hawaiian Pizza", 1, "19.99"}},
	},
	{
		customerName: "James Wilson", orderType: model.TypeDelivery, status: model.StatusPending, total: "35.98",
		items: []sampleItem{{"Meat Lovers Pizza", 1, "24.99"}, {"Mozzarella Sticks", 1, "10.99"}},
	},
	{
		customerName: "Lisa Thompson", orderType: model.TypePickup, status: model.StatusPreparing, total: "31.47",
		items: []sampleItem{{"Veggie Pizza", 1, "17.99"}, {"Greek Salad", 1, "11.99"}, {"Breadsticks", 1, "1.49"}},
	},
	{
		customerName: "Robert Brown", orderType: model.TypeDelivery, status: model.StatusReady, total: "58.96",
		items: []sampleItem{{"BBQ Chicken Pizza", 2, "21.99"}, {"Chicken Wings", 1, "14.98"}},
	},
	{
		customerName: "Jennifer Lee", orderType: model.TypePickup, status: model.StatusDelivered, total: "25.99",
		items: []sampleItem{{"Gluten-Free Pizza", 1, "22.99"}, {"Side Salad", 1, "3.00"}},
	},
	{
		customerName: "Daniel Jackson", orderType: model.TypeDelivery, status: model.StatusPending, total: "47.75",
		items: []sampleItem{{"Seafood Pizza", 1, "26.99"}, {"Shrimp Scampi", 1, "18.99"}, {"Garlic Bread", 1, "1.77"}},
	},
}

func build(src sampleOrder, orderID string, itemID func(i int) string, accountID string, now time.Time) model.Order {
	items := make([]model.OrderItem, 0, len(src.items))
	for i, it := range src.items {
		items = append(items, model.OrderItem{
			ID:       itemID(i),
			OrderID:  orderID,
			Name:     it.name,
			Quantity: it.quantity,
			Price:    decimal.RequireFromString(it.price),
		})
	}
	return model.Order{
		ID:           orderID,
		CustomerName: src.customerName,
		OrderType:    src.orderType,
		Status:       src.status,
		Total:        decimal.RequireFromString(src.total),
		AccountID:    accountID,
		Items:        items,
		CreatedAt:    now.Add(-src.createdAgo),
		UpdatedAt:    now.Add(-src.updatedAgo),
	}
}

// SampleOrders returns the fixed demo set shown when the store is down.
// IDs are stable demo_* strings so the UI can tell them apart from real rows.
func SampleOrders(accountID string) []model.Order {
	now := time.Now()
	out := make([]model.Order, 0, len(samples))
	itemSeq := 0
	for i, src := range samples {
		orderID := "demo_" + strconv.Itoa(i+1)
		out = append(out, build(src, orderID, func(int) string {
			itemSeq++
			return "item_" + strconv.Itoa(itemSeq)
		}, accountID, now))
	}
	return out
}

// SeedOrders returns the reseed set for the dev reset endpoint, with fresh
// uuids so rows can be inserted directly.
func SeedOrders(accountID string) []model.Order {
	now := time.Now()
	out := make([]model.Order, 0, len(seeds))
	for _, src := range seeds {
		orderID := uuid.NewString()
		out = append(out, build(src, orderID, func(int) string {
			return uuid.NewString()
		}, accountID, now))
	}
	return out
}
