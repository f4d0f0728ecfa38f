package handlers

import (
	"testing"

	"food_ordering/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckCredentials(t *testing.T) {
	h := NewAdminHandler(nil, nil, nil, &config.Config{
		AdminUsername: "admin",
		AdminPassword: "secret123",
	})

	if !h.checkCredentials("admin", "secret123") {
		t.Fatal("valid credentials rejected")
	}
	if h.checkCredentials("admin", "wrong") {
		t.Fatal("wrong password accepted")
	}
	if h.checkCredentials("root", "secret123") {
		t.Fatal("wrong username accepted")
	}
	if h.checkCredentials("", "") {
		t.Fatal("empty credentials accepted")
	}
}

func TestCheckCredentialsWithPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	h := NewAdminHandler(nil, nil, nil, &config.Config{
		AdminUsername:     "admin",
		AdminPassword:     "ignored-when-hash-set",
		AdminPasswordHash: string(hash),
	})

	if !h.checkCredentials("admin", "hunter2") {
		t.Fatal("hash-backed credentials rejected")
	}
	if h.checkCredentials("admin", "ignored-when-hash-set") {
		t.Fatal("plain password accepted although hash is configured")
	}
}
