package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrLocationRequired   = errors.New("location is required to login")
	ErrUserExists         = errors.New("username or email already registered")
	ErrNotFound           = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

// ReadOnlyMessage is shown whenever a viewer hits a mutating control.
const ReadOnlyMessage = "You have read-only Access"

// Role is the user permission level.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// ReadOnly reports whether the role blocks every create/update/delete.
func (r Role) ReadOnly() bool {
	return r == RoleViewer
}

type User struct {
	ID           uuid.UUID
	Name         string
	UserName     string
	Email        string
	Role         Role
	PasswordHash string
	HouseholdID  uuid.UUID
	// TokenEpoch increments on password change; tokens minted against an
	// older epoch stop verifying.
	TokenEpoch int
	CreatedAt  time.Time
}

// Household is the shared ownership unit a user's accounts and
// transactions belong to.
type Household struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Location is the client-reported coordinate pair captured at login.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LoginAttempt is one entry in the login audit log.
type LoginAttempt struct {
	ID        uuid.UUID
	UserName  string
	Success   bool
	Location  *Location
	CreatedAt time.Time
}
