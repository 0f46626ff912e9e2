package services

import (
	"context"
	"strings"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"
)

type AccountService struct {
	Users    UserStore
	Accounts AccountStore
}

func NewAccountService(us UserStore, as AccountStore) *AccountService {
	return &AccountService{Users: us, Accounts: as}
}

// requireOwner resolves the caller's account and rejects non-owners. Every
// owner-gated operation goes through here before touching anything.
func (s *AccountService) requireOwner(ctx context.Context, callerID string) (*model.User, *model.Account, error) {
	u, err := s.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, nil, apperr.NotFound("user or account not found")
	}
	if u.AccountID == nil {
		return nil, nil, apperr.NotFound("user or account not found")
	}
	account, err := s.Accounts.GetByID(ctx, *u.AccountID)
	if err != nil {
		return nil, nil, apperr.NotFound("user or account not found")
	}
	if account.OwnerID != u.ID {
		return nil, nil, apperr.Forbidden("only account owners can perform this action")
	}
	return u, account, nil
}

// Rename overwrites the account name (owner only).
func (s *AccountService) Rename(ctx context.Context, callerID, name string) error {
	_, account, err := s.requireOwner(ctx, callerID)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("account name is required")
	}
	return s.Accounts.Rename(ctx, account.ID, name)
}

// AddUser attaches an existing registered user to the caller's account.
// Inviting an email with no registered user fails; inviting one already in
// any account fails too, including repeat calls for the same target.
func (s *AccountService) AddUser(ctx context.Context, callerID, email string) error {
	_, account, err := s.requireOwner(ctx, callerID)
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return apperr.Validation("email is required")
	}
	target, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.NotFound("user with this email does not exist")
		}
		return err
	}
	if target.AccountID != nil {
		return apperr.Conflict("user is already part of an account")
	}
	return s.Users.SetAccount(ctx, target.ID, &account.ID)
}

// RemoveUser detaches a member from the caller's account. The owner cannot
// remove themselves; deleting the account is the way out.
func (s *AccountService) RemoveUser(ctx context.Context, callerID, targetID string) error {
	caller, account, err := s.requireOwner(ctx, callerID)
	if err != nil {
		return err
	}
	if targetID == "" {
		return apperr.Validation("user id is required")
	}
	if targetID == caller.ID {
		return apperr.Validation("account owners cannot remove themselves")
	}
	target, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.AccountID == nil || *target.AccountID != account.ID {
		return apperr.Validation("user is not part of your account")
	}
	return s.Users.SetAccount(ctx, target.ID, nil)
}

// Delete destroys the caller's account: all orders and their items, every
// member detached, the account row, and the owner user, as one transaction.
func (s *AccountService) Delete(ctx context.Context, callerID string) error {
	caller, account, err := s.requireOwner(ctx, callerID)
	if err != nil {
		return err
	}
	return s.Accounts.DeleteCascade(ctx, account.ID, caller.ID)
}
