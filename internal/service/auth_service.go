package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/jwt"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/my_errors"
)

// AuthService is the admin session layer. Its only job toward the write
// pipeline is supplying an authenticated actor identity; the scoreboard has
// a single configured admin principal.
type AuthService struct {
	adminUser string
	adminPass string
	jwtSecret string
}

func NewAuthService(adminUser, adminPass, jwtSecret string) *AuthService {
	return &AuthService{
		adminUser: adminUser,
		adminPass: adminPass,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	if !userOK || !passOK {
		return "", my_errors.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(username, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken returns the actor identity carried by a valid token.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := jwt.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", my_errors.ErrInvalidToken, err)
	}
	return claims.Actor, nil
}
