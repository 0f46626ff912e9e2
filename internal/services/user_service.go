package services

import (
	"context"
	"strings"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"
)

type UserService struct {
	Users    UserStore
	Accounts AccountStore
	Tokens   VerificationStore
	Mailer   EmailSender
	BaseURL  string
}

func NewUserService(us UserStore, as AccountStore, vs VerificationStore, mailer EmailSender, baseURL string) *UserService {
	return &UserService{
		Users:    us,
		Accounts: as,
		Tokens:   vs,
		Mailer:   mailer,
		BaseURL:  baseURL,
	}
}

// Profile resolves the authenticated user together with their account (owned
// or member), the member list, and the owner role flag. A missing user row
// after authentication is an invariant violation surfaced as NotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &model.Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AccountID: u.AccountID,
	}

	if u.AccountID != nil {
		account, err := s.Accounts.GetByID(ctx, *u.AccountID)
		if err != nil {
			return nil, err
		}
		members, err := s.Accounts.Members(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		account.Users = members
		p.Account = account
		p.IsAccountOwner = account.OwnerID == u.ID
	}

	return p, nil
}

// UpdateProfile changes the display name and optionally the email. An email
// change clears verification and triggers a fresh verification mail.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("name is required")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	changingEmail := email != "" && email != u.Email
	if changingEmail {
		if err := validateEmail(email); err != nil {
			return "", err
		}
		taken, err := s.Users.EmailExists(ctx, email)
		if err != nil {
			return "", err
		}
		if taken {
			return "", apperr.Validation("email is already in use")
		}
	}

	newEmail := ""
	if changingEmail {
		newEmail = email
	}
	if err := s.Users.UpdateProfile(ctx, userID, name, newEmail); err != nil {
		return "", err
	}

	msg := "profile updated successfully"
	if changingEmail {
		if err := s.Tokens.DeleteForUser(ctx, userID); err != nil {
			return "", err
		}
		if err := sendVerification(ctx, s.Tokens, s.Mailer, s.BaseURL, userID, email); err != nil {
			return "", err
		}
		msg += ". Please check your email to verify your new email address"
	}
	return msg, nil
}
