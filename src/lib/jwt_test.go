package lib

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndVerifyJWT(t *testing.T) {
	token, err := GenerateJWT("64f1a2b3c4d5e6f708192a3b", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := VerifyJWT(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyJWT returned error: %v", err)
	}
	if userID != "64f1a2b3c4d5e6f708192a3b" {
		t.Fatalf("userID = %q, want the id the token was issued for", userID)
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("64f1a2b3c4d5e6f708192a3b", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	if _, err := VerifyJWT(token, "another-secret"); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := GenerateJWT("64f1a2b3c4d5e6f708192a3b", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	if _, err := VerifyJWT(token, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerifyJWTGarbage(t *testing.T) {
	if _, err := VerifyJWT("not-a-token", testSecret); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
