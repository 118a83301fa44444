package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/northavenue/dealership-backend/internal/modules/user"
)

func identityEcho(t *testing.T, got *Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = FromContext(r.Context())
	})
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	repo := newFakeUserRepo(t, "preed", "s3cretpass", user.RoleSalesperson)
	svc := NewService(repo, "test-signing-key")
	token, _, err := svc.Login(context.Background(), "preed", "s3cretpass")
	if err != nil {
		t.Fatal(err)
	}

	var got Identity
	handler := Authenticate(svc)(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.Username != "preed" || got.Role != user.RoleSalesperson {
		t.Fatalf("identity = %+v", got)
	}
}

func TestAuthenticateDegradesToPublic(t *testing.T) {
	repo := newFakeUserRepo(t, "preed", "s3cretpass", user.RoleSalesperson)
	svc := NewService(repo, "test-signing-key")

	cases := []struct {
		name, header string
	}{
		{"no token", ""},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Identity
			handler := Authenticate(svc)(identityEcho(t, &got))

			req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != Anonymous {
				t.Fatalf("identity = %+v, want Anonymous", got)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guard := RequireRole(user.RoleManager, user.RoleOwner)(next)

	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleOwner, http.StatusNoContent},
		{user.RoleManager, http.StatusNoContent},
		{user.RoleSalesperson, http.StatusForbidden},
		{user.RolePublic, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/reports/seller-history", nil)
			ctx := context.WithValue(req.Context(), identityKey, Identity{Username: "x", Role: tc.role})
			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, req.WithContext(ctx))

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequireRoleWithoutIdentityIsForbidden(t *testing.T) {
	guard := RequireRole(user.RoleOwner)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
