package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
	verifyTokenTTL = 24 * time.Hour
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// ErrEmailNotVerified is distinct from invalid-credentials so the caller
	// can redirect to the verification flow instead of showing a login error.
	ErrEmailNotVerified = &apperr.Error{
		Kind:    apperr.KindForbidden,
		Code:    "EMAIL_NOT_VERIFIED",
		Message: "please verify your email address before signing in",
	}
)

type AuthService struct {
	Users     UserStore
	Accounts  AccountStore
	Tokens    VerificationStore
	Validator EmailValidator
	Mailer    EmailSender
	BaseURL   string
}

func NewAuthService(us UserStore, as AccountStore, vs VerificationStore, validator EmailValidator, mailer EmailSender, baseURL string) *AuthService {
	return &AuthService{
		Users:     us,
		Accounts:  as,
		Tokens:    vs,
		Validator: validator,
		Mailer:    mailer,
		BaseURL:   baseURL,
	}
}

func validateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}
	if !emailRegex.MatchString(email) {
		return apperr.Validation("invalid email format")
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return apperr.Validation(fmt.Sprintf("password too short: must be at least %d characters", MinPasswordLen))
	}
	return nil
}

// Register creates a user with their own account and sends the verification
// email. The new user is the account's owner.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("name is required")
	}
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if err := validatePassword(password); err != nil {
		return "", err
	}
	if err := s.Validator.Validate(ctx, email); err != nil {
		return "", apperr.Validation(err.Error())
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return "", err
	}

	account := &model.Account{
		ID:      uuid.NewString(),
		Name:    name + "'s Restaurant",
		OwnerID: user.ID,
	}
	if err := s.Accounts.Create(ctx, account); err != nil {
		return "", err
	}
	if err := s.Users.SetAccount(ctx, user.ID, &account.ID); err != nil {
		return "", err
	}

	if err := sendVerification(ctx, s.Tokens, s.Mailer, s.BaseURL, user.ID, email); err != nil {
		return "", err
	}

	return user.ID, nil
}

func sendVerification(ctx context.Context, tokens VerificationStore, mailer EmailSender, baseURL, userID, email string) error {
	token := uuid.NewString()
	if err := tokens.Create(ctx, userID, token, time.Now().Add(verifyTokenTTL)); err != nil {
		return err
	}
	verifyURL := baseURL + "/auth/verify-email?token=" + token
	return mailer.SendVerificationEmail(ctx, email, verifyURL)
}

// CheckCredentials authenticates an email/password pair. The same error is
// returned for unknown email and wrong password, to avoid account
// enumeration. A correct pair with an unverified email fails with
// ErrEmailNotVerified.
func (s *AuthService) CheckCredentials(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if u.EmailVerified == nil {
		return nil, ErrEmailNotVerified
	}
	// zero out password before returning
	u.PasswordHash = ""
	return u, nil
}

// VerifyEmail consumes a token and stamps the user verified.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.Tokens.GetUserID(ctx, token)
	if err != nil {
		return err
	}
	if err := s.Users.SetEmailVerified(ctx, userID, time.Now()); err != nil {
		return err
	}
	return s.Tokens.Delete(ctx, token)
}
