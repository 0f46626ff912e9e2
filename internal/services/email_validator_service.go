package services

import "context"

// EmailValidator runs extra checks on a signup email beyond the format check.
type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (v *LocalValidator) Validate(ctx context.Context, email string) error {
	// Format already checked by AuthService, nothing more to do locally
	return nil
}
