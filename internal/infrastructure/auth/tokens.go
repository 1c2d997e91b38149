package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultSecret = "rids-ngo-secret-key-change-in-production-2025"
	tokenTTL      = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

func secret() []byte {
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		return []byte(v)
	}
	return []byte(defaultSecret)
}

// IssueAdminToken signs an HS256 bearer token for the admin identified by
// email (stored in the sub claim, 24h expiry).
func IssueAdminToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseAdminToken validates a bearer token and returns the admin email.
func ParseAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
