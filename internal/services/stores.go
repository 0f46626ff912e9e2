package services

import (
	"context"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/model"
)

// Store capabilities consumed by the services. The pgx repositories satisfy
// these; tests swap in fakes.

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetAccount(ctx context.Context, userID string, accountID *string) error
	SetEmailVerified(ctx context.Context, userID string, at time.Time) error
	UpdateProfile(ctx context.Context, userID, name, email string) error
}

type AccountStore interface {
	Create(ctx context.Context, a *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	Members(ctx context.Context, accountID string) ([]model.Member, error)
	Rename(ctx context.Context, accountID, name string) error
	DeleteCascade(ctx context.Context, accountID, ownerID string) error
}

type VerificationStore interface {
	Create(ctx context.Context, userID, token string, exp time.Time) error
	GetUserID(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, userID string) error
}
