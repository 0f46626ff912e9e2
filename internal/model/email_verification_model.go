package model

import "time"

type EmailVerification struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
