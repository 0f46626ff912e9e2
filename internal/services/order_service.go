package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/demo"
	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSource is the order persistence capability. Two implementations: the
// live pgx repository and the in-memory demo fallback an account session is
// switched to when the store fails.
type OrderSource interface {
	ListByAccount(ctx context.Context, accountID string) ([]model.Order, error)
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	Create(ctx context.Context, o *model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}

type CreateOrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CreateOrderInput struct {
	CustomerName string            `json:"customerName"`
	OrderType    model.OrderType   `json:"orderType"`
	Items        []CreateOrderItem `json:"items"`
}

type OrderService struct {
	Live OrderSource

	mu       sync.Mutex
	fallback map[string]*demo.Store // degraded sessions, keyed by account
}

func NewOrderService(live OrderSource) *OrderService {
	return &OrderService{
		Live:     live,
		fallback: make(map[string]*demo.Store),
	}
}

// storeFailed reports whether err is a store outage rather than a business
// rule failure. Business failures carry an apperr kind; raw driver errors do
// not.
func storeFailed(err error) bool {
	return err != nil && !apperr.IsAppError(err)
}

// session returns the fallback source if this account has already degraded.
func (s *OrderService) session(accountID string) (*demo.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.fallback[accountID]
	return src, ok
}

// degrade switches the account's session to demo data. Idempotent; the first
// failure seeds the sample set and later calls reuse it so local mutations
// survive for the rest of the session.
func (s *OrderService) degrade(accountID string) *demo.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if src, ok := s.fallback[accountID]; ok {
		return src
	}
	src := demo.NewStore(demo.SampleOrders(accountID))
	s.fallback[accountID] = src
	return src
}

// List returns the account's orders in stable creation order. demoMode is
// true when the data came from the non-persistent fallback.
func (s *OrderService) List(ctx context.Context, accountID string) ([]model.Order, bool, error) {
	if src, ok := s.session(accountID); ok {
		orders, err := src.ListByAccount(ctx, accountID)
		return orders, true, err
	}
	orders, err := s.Live.ListByAccount(ctx, accountID)
	if storeFailed(err) {
		src := s.degrade(accountID)
		orders, err := src.ListByAccount(ctx, accountID)
		return orders, true, err
	}
	if err != nil {
		return nil, false, err
	}
	return orders, false, nil
}

// Grouped partitions the account's orders into the four status buckets.
func (s *OrderService) Grouped(ctx context.Context, accountID string) (model.OrderBuckets, bool, error) {
	orders, demoMode, err := s.List(ctx, accountID)
	if err != nil {
		return model.OrderBuckets{}, demoMode, err
	}
	return model.GroupByStatus(orders), demoMode, nil
}

// Create validates the input, recomputes the total server-side from the
// items, and stores the order at status pending.
func (s *OrderService) Create(ctx context.Context, accountID string, in CreateOrderInput) (*model.Order, bool, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		return nil, false, apperr.Validation("customer name is required")
	}
	if !in.OrderType.Valid() {
		return nil, false, apperr.Validation("order type must be delivery or pickup")
	}
	if len(in.Items) == 0 {
		return nil, false, apperr.Validation("order must have at least one item")
	}

	now := time.Now()
	order := &model.Order{
		ID:           uuid.NewString(),
		CustomerName: in.CustomerName,
		OrderType:    in.OrderType,
		Status:       model.StatusPending,
		AccountID:    accountID,
		Items:        make([]model.OrderItem, 0, len(in.Items)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, it := range in.Items {
		if it.Name == "" {
			return nil, false, apperr.Validation("item name is required")
		}
		if it.Quantity <= 0 {
			return nil, false, apperr.Validation("item quantity must be positive")
		}
		if it.Price.IsNegative() {
			return nil, false, apperr.Validation("item price cannot be negative")
		}
		order.Items = append(order.Items, model.OrderItem{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	order.Total = model.ItemsTotal(order.Items)

	if src, ok := s.session(accountID); ok {
		return order, true, src.Create(ctx, order)
	}
	err := s.Live.Create(ctx, order)
	if storeFailed(err) {
		src := s.degrade(accountID)
		return order, true, src.Create(ctx, order)
	}
	if err != nil {
		return nil, false, err
	}
	return order, false, nil
}

// Advance moves an order one step along pending → preparing → ready →
// delivered. Any requested status that is not exactly the successor is
// rejected, so a stale or malicious client cannot skip steps or move
// backwards.
func (s *OrderService) Advance(ctx context.Context, accountID, orderID string, newStatus model.OrderStatus) (*model.Order, bool, error) {
	if !newStatus.Valid() {
		return nil, false, apperr.Validation("invalid order status")
	}
	if src, ok := s.session(accountID); ok {
		o, err := s.advanceIn(ctx, src, accountID, orderID, newStatus)
		return o, true, err
	}
	o, err := s.advanceIn(ctx, s.Live, accountID, orderID, newStatus)
	if storeFailed(err) {
		src := s.degrade(accountID)
		o, err := s.advanceIn(ctx, src, accountID, orderID, newStatus)
		return o, true, err
	}
	return o, false, err
}

func (s *OrderService) advanceIn(ctx context.Context, src OrderSource, accountID, orderID string, newStatus model.OrderStatus) (*model.Order, error) {
	o, err := src.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.AccountID != accountID {
		// cross-account ids look like missing orders
		return nil, apperr.NotFound("order not found")
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil, apperr.Conflict("order is already delivered")
	}
	if newStatus != next {
		return nil, apperr.Conflict("order status can only advance to " + string(next))
	}
	return src.UpdateStatus(ctx, orderID, newStatus)
}
