package model

import "time"

// Account is the organizational unit owning orders. Exactly one owner; zero or
// more member users attached via User.AccountID.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	Users     []Member  `json:"users,omitempty"`
}
