package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"artsadventure_backend/internals/configs"
)

func TestIssueAccessTokenRoundTrip(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })

	signed, err := IssueAccessToken("  Student@Example.COM  ", "Jane Doe")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("unit-test-secret"), nil
	}); err != nil {
		t.Fatalf("parse issued token: %v", err)
	}

	if got := claims["email"]; got != "student@example.com" {
		t.Errorf("email claim = %v, want trimmed lowercase identity", got)
	}
	if got := claims["name"]; got != "Jane Doe" {
		t.Errorf("name claim = %v, want Jane Doe", got)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim has type %T, want number", claims["exp"])
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 55*time.Minute || ttl > 65*time.Minute {
		t.Errorf("token ttl = %v, want about an hour", ttl)
	}
}

func TestIssueAccessTokenOmitsEmptyName(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "unit-test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })

	signed, err := IssueAccessToken("student@example.com", "")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("unit-test-secret"), nil
	}); err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if _, present := claims["name"]; present {
		t.Error("name claim should be omitted when no name is given")
	}
}

func TestIssueAccessTokenMissingSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = old })

	if _, err := IssueAccessToken("student@example.com", ""); err == nil {
		t.Fatal("expected error when signing secret is not configured")
	}
}
