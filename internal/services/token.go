package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mockmate/interview-api/internal/models"
)

// TokenClaims is the authenticated identity carried by a bearer token.
type TokenClaims struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type TokenService interface {
	Sign(user *models.User) (string, error)
	Parse(token string) (*TokenClaims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign implements TokenService.
func (t *tokenService) Sign(user *models.User) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("jwt secret not configured")
	}

	claims := jwt.MapClaims{
		"id":       user.ID.String(),
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse implements TokenService.
func (t *tokenService) Parse(tokenString string) (*TokenClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing user id")
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &TokenClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
	}, nil
}
