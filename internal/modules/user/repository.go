package user

import "context"

// Repository defines the interface for user account storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}
