package token

import (
	"strings"
	"testing"
	"time"
)

func TestMintAndParse(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	signed, expiresAt, err := mgr.Mint("uid-123", "admin@elitecars.test", "Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("unexpected expiry: %v", expiresAt)
	}

	claims, err := mgr.Parse(signed)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if claims.Subject != "uid-123" {
		t.Errorf("expected subject uid-123, got %q", claims.Subject)
	}
	if claims.Email != "admin@elitecars.test" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	minter, _ := NewManager("secret-a", time.Hour)
	parser, _ := NewManager("secret-b", time.Hour)

	signed, _, err := minter.Mint("uid-123", "admin@elitecars.test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := parser.Parse(signed); err == nil {
		t.Error("expected parse to fail with a different secret")
	}
}

func TestParse_Expired(t *testing.T) {
	mgr, _ := NewManager("test-secret", time.Millisecond)

	signed, _, err := mgr.Mint("uid-123", "admin@elitecars.test", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := mgr.Parse(signed); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry error, got %v", err)
	}
}

func TestNewManager_Validation(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewManager("secret", 0); err == nil {
		t.Error("expected error for zero ttl")
	}
}
