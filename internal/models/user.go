package models

import "time"

// User is one account record. PasswordHash is opaque (algorithm, cost, and
// salt are embedded in the string) and never serialized to clients.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
