package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "Str0ng!pass") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "Wr0ng!pass") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
