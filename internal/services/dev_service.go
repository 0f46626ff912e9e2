package services

import (
	"context"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/demo"
	"github.com/RBMarketing1011/restaunax/internal/model"
)

type SeedStore interface {
	AccountExists(ctx context.Context, accountID string) (bool, error)
	ResetAccountOrders(ctx context.Context, accountID string, orders []model.Order) error
	ResetAll(ctx context.Context) error
}

// DevService backs the dev-only reset endpoint: reseed one account's orders,
// or wipe everything.
type DevService struct {
	Store SeedStore
}

func NewDevService(store SeedStore) *DevService {
	return &DevService{Store: store}
}

func (s *DevService) Reset(ctx context.Context, accountID string) (message string, ordersCreated int, err error) {
	if accountID != "" {
		exists, err := s.Store.AccountExists(ctx, accountID)
		if err != nil {
			return "", 0, err
		}
		if !exists {
			return "", 0, apperr.NotFound("account not found")
		}
		orders := demo.SeedOrders(accountID)
		if err := s.Store.ResetAccountOrders(ctx, accountID, orders); err != nil {
			return "", 0, err
		}
		return "account seeded successfully", len(orders), nil
	}

	if err := s.Store.ResetAll(ctx); err != nil {
		return "", 0, err
	}
	return "database cleared successfully", 0, nil
}
