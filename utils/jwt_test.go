package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "owner", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "owner" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken(token, "other"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken(token, "secret"); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "secret"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
