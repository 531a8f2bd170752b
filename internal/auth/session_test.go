package auth

import (
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("cookie-secret")
	sess := Session{UserID: "user-1", PatientID: "patient-1"}

	tokenStr, err := SignSession(sess, secret, time.Hour)
	if err != nil {
		t.Fatalf("SignSession error: %v", err)
	}

	got, err := ParseSession(tokenStr, secret)
	if err != nil {
		t.Fatalf("ParseSession error: %v", err)
	}
	if got != sess {
		t.Fatalf("session mismatch: got %+v want %+v", got, sess)
	}
}

func TestSessionExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("cookie-secret")

	tokenStr, err := SignSession(Session{UserID: "user-1"}, secret, -time.Second)
	if err != nil {
		t.Fatalf("SignSession error: %v", err)
	}

	if _, err := ParseSession(tokenStr, secret); err == nil {
		t.Fatalf("expected an expired session to fail parsing")
	}
}

func TestSessionTampered(t *testing.T) {
	t.Parallel()

	tokenStr, err := SignSession(Session{UserID: "user-1"}, []byte("right"), time.Hour)
	if err != nil {
		t.Fatalf("SignSession error: %v", err)
	}

	if _, err := ParseSession(tokenStr, []byte("wrong")); err == nil {
		t.Fatalf("expected a forged session to fail parsing")
	}

	if _, err := ParseSession("not.a.jwt", []byte("right")); err == nil {
		t.Fatalf("expected garbage to fail parsing")
	}
}
