package model

import "time"

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"` // never JSON-encode
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	AccountID     *string    `json:"accountId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Member is the slimmed-down user shape exposed in an account's member list.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is what GET /user/profile returns: the user plus their resolved
// account (owned or member) and role flag.
type Profile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	AccountID      *string  `json:"accountId"`
	IsAccountOwner bool     `json:"isAccountOwner"`
	Account        *Account `json:"account"`
}
