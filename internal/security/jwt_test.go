package security_test

import (
	"testing"
	"time"

	"github.com/homekeep/homekeep/internal/security"
)

func TestTokenVerifier_SignAndVerify(t *testing.T) {
	verifier := security.NewTokenVerifier("test-secret-key-with-32-chars!!", "homekeep-test")

	token, err := verifier.Sign("user_2aF9xK", "tenant@example.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if token == "" {
		t.Error("token is empty")
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	if claims.Subject != "user_2aF9xK" {
		t.Errorf("subject mismatch: got %v, want user_2aF9xK", claims.Subject)
	}

	if claims.Email != "tenant@example.com" {
		t.Errorf("email mismatch: got %v, want tenant@example.com", claims.Email)
	}
}

func TestTokenVerifier_RejectsWrongSecret(t *testing.T) {
	issuer := security.NewTokenVerifier("issuer-secret-key-32-characters!", "homekeep-test")
	verifier := security.NewTokenVerifier("different-secret-32-characters!!", "homekeep-test")

	token, err := issuer.Sign("user_2aF9xK", "tenant@example.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification to fail with wrong secret")
	}
}

func TestTokenVerifier_RejectsExpired(t *testing.T) {
	verifier := security.NewTokenVerifier("test-secret-key-with-32-chars!!", "homekeep-test")

	token, err := verifier.Sign("user_2aF9xK", "tenant@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification to fail for expired token")
	}
}

func TestTokenVerifier_RejectsWrongIssuer(t *testing.T) {
	issuer := security.NewTokenVerifier("test-secret-key-with-32-chars!!", "someone-else")
	verifier := security.NewTokenVerifier("test-secret-key-with-32-chars!!", "homekeep-test")

	token, err := issuer.Sign("user_2aF9xK", "tenant@example.com", 15*time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected verification to fail for wrong issuer")
	}
}
