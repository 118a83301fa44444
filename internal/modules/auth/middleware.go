package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

type contextKey int

const identityKey contextKey = 0

// FromContext returns the identity attached by Authenticate; requests that
// never passed through it read as Public.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey).(Identity); ok {
		return id
	}
	return Anonymous
}

// Authenticate decodes an optional bearer token and attaches the resulting
// identity to the request context. Missing or invalid tokens degrade to the
// Public identity rather than failing the request; role checks happen at
// the route level.
func Authenticate(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := Anonymous
			header := r.Header.Get("Authorization")
			if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				if id, err := svc.Verify(parts[1]); err == nil {
					identity = id
				}
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a route subtree to the listed roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := FromContext(r.Context())
			if !allowed[identity.Role] {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
