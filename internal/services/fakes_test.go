package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"
)

// In-memory store fakes backing the service tests.

var errStoreDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type fakeUserStore struct {
	order []string
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) add(u model.User) {
	f.order = append(f.order, u.ID)
	cp := u
	f.users[u.ID] = &cp
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) error {
	f.add(*u)
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, id := range f.order {
		if f.users[id].Email == email {
			cp := *f.users[id]
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) SetAccount(ctx context.Context, userID string, accountID *string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.AccountID = accountID
	return nil
}

func (f *fakeUserStore) SetEmailVerified(ctx context.Context, userID string, at time.Time) error {
	u, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.EmailVerified = &at
	return nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, userID, name, email string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.Name = name
	if email != "" {
		u.Email = email
		u.EmailVerified = nil
	}
	return nil
}

func (f *fakeUserStore) delete(userID string) {
	delete(f.users, userID)
	for i, id := range f.order {
		if id == userID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

type fakeAccountStore struct {
	accounts map[string]*model.Account
	users    *fakeUserStore
	orders   *fakeOrderSource
}

func newFakeAccountStore(users *fakeUserStore) *fakeAccountStore {
	return &fakeAccountStore{accounts: map[string]*model.Account{}, users: users}
}

func (f *fakeAccountStore) add(a model.Account) {
	cp := a
	f.accounts[a.ID] = &cp
}

func (f *fakeAccountStore) Create(ctx context.Context, a *model.Account) error {
	f.add(*a)
	return nil
}

func (f *fakeAccountStore) GetByID(ctx context.Context, id string) (*model.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperr.NotFound("account not found")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountStore) Members(ctx context.Context, accountID string) ([]model.Member, error) {
	members := []model.Member{}
	for _, id := range f.users.order {
		u := f.users.users[id]
		if u.AccountID != nil && *u.AccountID == accountID {
			members = append(members, model.Member{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return members, nil
}

func (f *fakeAccountStore) Rename(ctx context.Context, accountID, name string) error {
	a, ok := f.accounts[accountID]
	if !ok {
		return apperr.NotFound("account not found")
	}
	a.Name = name
	return nil
}

func (f *fakeAccountStore) DeleteCascade(ctx context.Context, accountID, ownerID string) error {
	if f.orders != nil {
		f.orders.deleteByAccount(accountID)
	}
	for _, id := range f.users.order {
		u := f.users.users[id]
		if u.AccountID != nil && *u.AccountID == accountID {
			u.AccountID = nil
		}
	}
	delete(f.accounts, accountID)
	f.users.delete(ownerID)
	return nil
}

type fakeVerificationStore struct {
	tokens map[string]model.EmailVerification
}

func newFakeVerificationStore() *fakeVerificationStore {
	return &fakeVerificationStore{tokens: map[string]model.EmailVerification{}}
}

func (f *fakeVerificationStore) Create(ctx context.Context, userID, token string, exp time.Time) error {
	f.tokens[token] = model.EmailVerification{Token: token, UserID: userID, ExpiresAt: exp}
	return nil
}

func (f *fakeVerificationStore) GetUserID(ctx context.Context, token string) (string, error) {
	v, ok := f.tokens[token]
	if !ok || time.Now().After(v.ExpiresAt) {
		return "", apperr.NotFound("invalid or expired token")
	}
	return v.UserID, nil
}

func (f *fakeVerificationStore) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeVerificationStore) DeleteForUser(ctx context.Context, userID string) error {
	for t, v := range f.tokens {
		if v.UserID == userID {
			delete(f.tokens, t)
		}
	}
	return nil
}

type fakeMailer struct {
	sent []string // "email|url"
}

func (f *fakeMailer) SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error {
	f.sent = append(f.sent, toEmail+"|"+verifyURL)
	return nil
}

type fakeValidator struct {
	err error
}

func (f *fakeValidator) Validate(ctx context.Context, email string) error {
	return f.err
}

// fakeOrderSource plays the live pgx order repository. Setting fail makes
// every call return a raw driver error, simulating a store outage.
type fakeOrderSource struct {
	mu     sync.Mutex
	order  []string
	orders map[string]*model.Order
	fail   bool
}

func newFakeOrderSource() *fakeOrderSource {
	return &fakeOrderSource{orders: map[string]*model.Order{}}
}

func (f *fakeOrderSource) setFail(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = v
}

func (f *fakeOrderSource) ListByAccount(ctx context.Context, accountID string) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	out := []model.Order{}
	for _, id := range f.order {
		if f.orders[id].AccountID == accountID {
			out = append(out, *f.orders[id])
		}
	}
	return out, nil
}

func (f *fakeOrderSource) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	o, ok := f.orders[orderID]
	if !ok {
		return nil, apperr.NotFound("order not found")
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderSource) Create(ctx context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	cp := *o
	f.order = append(f.order, o.ID)
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderSource) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	o, ok := f.orders[orderID]
	if !ok {
		return nil, apperr.NotFound("order not found")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (f *fakeOrderSource) deleteByAccount(accountID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.order[:0]
	for _, id := range f.order {
		if f.orders[id].AccountID == accountID {
			delete(f.orders, id)
		} else {
			kept = append(kept, id)
		}
	}
	f.order = kept
}
