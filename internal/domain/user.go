package domain

import "time"

// User represents a registered account. The email is the primary key and is
// globally unique. Users are created once and never mutated.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"nome"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
