package demo

import (
	"context"
	"sync"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"
)

// Store is the in-memory fallback order source for one degraded session.
// Nothing written here is ever persisted; the caller surfaces that through
// the demoMode flag.
type Store struct {
	mu     sync.Mutex
	orders []model.Order
}

func NewStore(seed []model.Order) *Store {
	s := &Store{orders: make([]model.Order, len(seed))}
	copy(s.orders, seed)
	return s
}

func (s *Store) ListByAccount(ctx context.Context, accountID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if o.AccountID == accountID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			cp := o
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("order not found")
}

func (s *Store) Create(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *o)
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("order not found")
}
