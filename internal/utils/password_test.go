package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("expected hash to differ from plaintext")
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Errorf("expected password to match its hash, got: %v", err)
	}
	if err := ComparePassword(hash, "other"); err == nil {
		t.Error("expected mismatch for a different password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, _ := HashPassword("same", bcrypt.MinCost)
	second, _ := HashPassword("same", bcrypt.MinCost)

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("pw", 100)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected readable cost, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestComparePassword_InvalidHash(t *testing.T) {
	if err := ComparePassword("not-a-bcrypt-hash", "pw"); err == nil {
		t.Error("expected error for a malformed hash")
	}
}
