package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/northavenue/dealership-backend/internal/apperr"
	"github.com/northavenue/dealership-backend/internal/modules/user"
	"golang.org/x/crypto/bcrypt"
)

type claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type service struct {
	userRepo user.Repository
	secret   []byte
}

// NewService creates a new auth service signing tokens with secret.
func NewService(userRepo user.Repository, secret string) Service {
	return &service{userRepo: userRepo, secret: []byte(secret)}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", nil, apperr.Rejected("invalid username or password")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Rejected("invalid username or password")
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Role: string(u.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   u.Username,
			ExpiresAt: expirationTime.Unix(),
		},
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	return tokenString, u, nil
}

func (s *service) Verify(tokenString string) (Identity, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Anonymous, errors.New("invalid or expired token")
	}
	role, err := user.ParseRole(c.Role)
	if err != nil {
		return Anonymous, err
	}
	return Identity{Username: c.Subject, Role: role}, nil
}
