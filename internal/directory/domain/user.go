package domain

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// Valid reports whether s is one of the known status values.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// Label returns the human-readable form used by list views.
func (s UserStatus) Label() string {
	switch s {
	case UserStatusActive:
		return "Active"
	case UserStatusInactive:
		return "Inactive"
	default:
		return string(s)
	}
}

type User struct {
	ID        int64
	FirstName string // optional; empty means not set (NULL in the store)
	LastName  string
	Initials  string // optional; empty means not set (NULL in the store)
	Email     string // unique across all users
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserInput is the raw form-shaped payload for create/update. It is
// validated by the schema package before it reaches the store.
type UserInput struct {
	FirstName string
	LastName  string
	Initials  string
	Email     string
	Status    UserStatus
}
