package service

import (
	"github.com/google/uuid"
)

// TokenService validates access tokens issued by the hosted platform.
// Authentication itself is delegated; this service only checks that a
// request carries a token the platform signed and extracts the identity.
type TokenService interface {
	// ValidateAccessToken verifies the token signature and expiry and
	// returns the authenticated user's ID.
	ValidateAccessToken(token string) (uuid.UUID, error)
}
