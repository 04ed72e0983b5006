package models

import "time"

// User is the only entity with cross-request lifetime. Users are created
// lazily on first authenticated contact, keyed by email.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
