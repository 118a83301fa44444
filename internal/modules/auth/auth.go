package auth

import (
	"context"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

// Identity is the authenticated caller attached to each request. Anonymous
// requests carry the Public identity.
type Identity struct {
	Username string
	Role     user.Role
}

// Anonymous is the identity used when no valid token accompanies a request.
var Anonymous = Identity{Role: user.RolePublic}

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials and issues a signed token carrying the
	// username and role.
	Login(ctx context.Context, username, password string) (string, *user.User, error)

	// Verify parses a token and returns the identity it encodes.
	Verify(token string) (Identity, error)
}
