package parts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/northavenue/dealership-backend/internal/modules/auth"
	"github.com/northavenue/dealership-backend/internal/modules/user"
)

// stubAuth verifies a bearer token whose literal value is a role name.
type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	return "", nil, nil
}

func (stubAuth) Verify(token string) (auth.Identity, error) {
	role, err := user.ParseRole(token)
	if err != nil {
		return auth.Anonymous, err
	}
	return auth.Identity{Username: "tester", Role: role}, nil
}

func newPartsRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.Authenticate(stubAuth{}))
	NewHandler(NewService(&fakeRepo{statuses: map[string]PartStatus{}})).RegisterRoutes(router)
	return router
}

func TestListPartsRequiresCostAccess(t *testing.T) {
	router := newPartsRouter()

	cases := []struct {
		name string
		role string
		want int
	}{
		{"anonymous", "", http.StatusForbidden},
		{"salesperson", "Salesperson", http.StatusForbidden},
		{"inventory clerk", "Inventory clerk", http.StatusOK},
		{"manager", "Manager", http.StatusOK},
		{"owner", "Owner", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/vehicles/1HGCM82633A004352/parts", nil)
			if tc.role != "" {
				req.Header.Set("Authorization", "Bearer "+tc.role)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
