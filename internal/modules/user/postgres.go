package user

import (
	"context"
	"database/sql"

	"github.com/northavenue/dealership-backend/internal/apperr"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Role)
	return apperr.FromDB(err, "username already taken")
}

func (r *postgresRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	query := `
		SELECT username, password_hash, first_name, last_name, role
		FROM users
		WHERE username = $1
	`
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("user %s not found", username)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
