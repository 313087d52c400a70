package utils

import (
	"testing"
	"time"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22-hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22-hunter22" {
		t.Fatal("password not hashed")
	}
	if !CheckPasswordHash("hunter22-hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issued := TokenClaims{UserID: 7, Role: "admin", Email: "a@b.test"}
	token, err := GenerateToken(issued, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != issued {
		t.Errorf("claims = %+v, want %+v", parsed, issued)
	}
}

func TestTokenRejections(t *testing.T) {
	token, err := GenerateToken(TokenClaims{UserID: 7, Role: "customer"}, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("token accepted with wrong secret")
	}
	if _, err := ParseToken("not-a-token", "test-secret"); err == nil {
		t.Error("garbage accepted")
	}

	expired, err := GenerateToken(TokenClaims{UserID: 7}, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(expired, "test-secret"); err == nil {
		t.Error("expired token accepted")
	}

	if _, err := GenerateToken(TokenClaims{UserID: 7}, "", time.Hour); err == nil {
		t.Error("empty secret accepted")
	}
}
