package security

import (
	"strings"
	"testing"
)

func TestGenerateFromPassword_NotPlaintext(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	encoded, err := h.GenerateFromPassword("Secr3t!")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}
	if encoded == "Secr3t!" {
		t.Fatalf("hash equals the plaintext")
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}
}

func TestVerifyPassword_Match(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	encoded, err := h.GenerateFromPassword("Secr3t!")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}

	if !h.VerifyPassword("Secr3t!", encoded) {
		t.Fatalf("expected correct password to verify")
	}
	if h.VerifyPassword("secr3t!", encoded) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestVerifyPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	a, err := h.GenerateFromPassword("same-password")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}
	b, err := h.GenerateFromPassword("same-password")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}

	if a == b {
		t.Fatalf("two hashes of the same password share a salt")
	}
	if !h.VerifyPassword("same-password", a) || !h.VerifyPassword("same-password", b) {
		t.Fatalf("both hashes should verify against the original password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$!!!",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	} {
		if h.VerifyPassword("whatever", encoded) {
			t.Fatalf("malformed hash %q verified", encoded)
		}
	}
}
