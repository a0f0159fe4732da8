package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every task and tag in the system is owned by exactly one user.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID, server-assigned).
	ID string `json:"id"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It MUST never be plaintext and is excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
