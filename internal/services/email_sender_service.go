package services

import "context"

// EmailSender delivers verification mail. Implemented by external/resend.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, verifyURL string) error
}
