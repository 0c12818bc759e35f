package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a user account.
type Role string

const (
	// RoleTraveller is the default role for new registrations.
	RoleTraveller Role = "Traveller"
	// RoleAdmin grants access to user management and usage reports.
	RoleAdmin Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTraveller || r == RoleAdmin
}

// User is a registered account. PasswordHash is the bcrypt hash of the
// password and must never be serialized to API responses — handlers return
// PublicUser instead.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Provider     string // credential origin; always "local" for email/password
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public strips credential material from a User for API responses.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// PublicUser is the credential-free view of a User.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}
