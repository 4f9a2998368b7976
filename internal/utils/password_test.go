package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("segreto", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "segreto" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword(hash, "segreto") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "sbagliato") {
		t.Fatal("wrong password accepted")
	}
}
