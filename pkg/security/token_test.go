package security

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := ti.Generate("user-1", PurposeConfirmEmail)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	got, ok := ti.Verify("user-1", PurposeConfirmEmail, tok)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if got.UserID != "user-1" {
		t.Fatalf("userID mismatch: got %q want %q", got.UserID, "user-1")
	}
	if got.JTI == "" {
		t.Fatalf("expected a jti")
	}
	if !got.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", got.ExpiresAt)
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("secret"), -time.Second)

	tok, err := ti.Generate("user-1", PurposeConfirmEmail)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if ti.Confirm("user-1", PurposeConfirmEmail, tok) {
		t.Fatalf("expected expired token to fail even for the correct user")
	}
}

func TestTokenSubjectBound(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("secret"), time.Hour)

	tok, err := ti.Generate("user-a", PurposeResetPassword)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if ti.Confirm("user-b", PurposeResetPassword, tok) {
		t.Fatalf("token for user-a confirmed against user-b")
	}
}

func TestTokenPurposeBound(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("secret"), time.Hour)

	tok, err := ti.Generate("user-1", PurposeConfirmEmail)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if ti.Confirm("user-1", PurposeResetPassword, tok) {
		t.Fatalf("confirmation token accepted as a reset token")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Generate("user-1", PurposeConfirmEmail)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if NewTokenIssuer([]byte("wrong-secret"), time.Hour).Confirm("user-1", PurposeConfirmEmail, tok) {
		t.Fatalf("token verified with the wrong secret")
	}
}

func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("secret"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if ti.Confirm("user-1", PurposeConfirmEmail, tok) {
			t.Fatalf("malformed token %q verified", tok)
		}
	}
}
