package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Every user carries exactly one role; registration defaults to AGENT.
const (
	RoleAdmin   = "ADMIN"
	RoleHandler = "HANDLER"
	RoleAgent   = "AGENT"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleHandler, RoleAgent:
		return true
	}
	return false
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`        // Never serialized
	Role         string    `json:"role" db:"role"`              // ADMIN, HANDLER or AGENT
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`   // Last update timestamp
}
