package user

import (
	"context"
	"testing"

	"github.com/northavenue/dealership-backend/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users map[string]*User
}

func (r *fakeRepo) CreateUser(ctx context.Context, u *User) error {
	if _, exists := r.users[u.Username]; exists {
		return apperr.Rejected("username %s is taken", u.Username)
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperr.NotFound("user %s not found", username)
	}
	return u, nil
}

func TestRegisterUserHashesPassword(t *testing.T) {
	repo := &fakeRepo{users: make(map[string]*User)}
	svc := NewService(repo)

	u, err := svc.RegisterUser(context.Background(), "clerk1", "s3cretpass", "Dana", "Moss", RoleInventoryClerk)
	if err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not match the password: %v", err)
	}
}

func TestRegisterUserRejectsPublicRole(t *testing.T) {
	repo := &fakeRepo{users: make(map[string]*User)}
	svc := NewService(repo)

	if _, err := svc.RegisterUser(context.Background(), "ghost", "s3cretpass", "No", "One", RolePublic); err == nil {
		t.Fatal("the public role must not be assignable to an account")
	}
	if len(repo.users) != 0 {
		t.Fatal("rejected registration must not store an account")
	}
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	repo := &fakeRepo{users: make(map[string]*User)}
	svc := NewService(repo)

	if _, err := svc.RegisterUser(context.Background(), "clerk1", "s3cretpass", "Dana", "Moss", RoleInventoryClerk); err != nil {
		t.Fatal(err)
	}
	_, err := svc.RegisterUser(context.Background(), "clerk1", "otherpass", "Drew", "Moss", RoleSalesperson)
	if !apperr.IsRejected(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
}
