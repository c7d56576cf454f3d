package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims accepted by the API when token
// authentication is enabled. Tokens are issued by an external identity
// provider and validated here; this service never issues tokens itself.
type Claims struct {
	// UserID identifies the caller at the identity provider.
	UserID string `json:"user_id,omitempty"`
	// Email is the caller's email address.
	Email string `json:"email,omitempty"`
	// Name is the caller's display name.
	Name string `json:"name,omitempty"`
	// Roles lists the caller's roles.
	Roles []string `json:"roles,omitempty"`

	jwt.RegisteredClaims
}
