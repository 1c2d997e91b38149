package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := IssueAdminToken("admin@rids.org")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	email, err := ParseAdminToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if email != "admin@rids.org" {
		t.Fatalf("expected admin@rids.org, got %q", email)
	}
}

func TestParseAdminToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseAdminToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "admin@rids.org",
			"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseAdminToken(forged); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "admin@rids.org",
			"exp": jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseAdminToken(expired); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.MapClaims{
			"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseAdminToken(noSub); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
