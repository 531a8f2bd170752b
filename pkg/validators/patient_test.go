package validators

import (
	"errors"
	"testing"
	"time"
)

func TestDOBValidator(t *testing.T) {
	t.Parallel()

	dob, err := DOBValidator("1990-04-12")
	if err != nil {
		t.Fatalf("DOBValidator error: %v", err)
	}
	if dob.Year() != 1990 || dob.Month() != time.April || dob.Day() != 12 {
		t.Fatalf("unexpected date: %v", dob)
	}

	cases := map[string]error{
		"":           ErrDOBEmpty,
		"12-04-1990": ErrDOBInvalid,
		"1990/04/12": ErrDOBInvalid,
		"not-a-date": ErrDOBInvalid,
		"2999-01-01": ErrDOBInFuture,
	}

	for input, want := range cases {
		if _, err := DOBValidator(input); !errors.Is(err, want) {
			t.Fatalf("DOBValidator(%q): expected %v, got %v", input, want, err)
		}
	}
}

func TestEmailValidator(t *testing.T) {
	t.Parallel()

	if err := EmailValidator("alice@example.com"); err != nil {
		t.Fatalf("EmailValidator error: %v", err)
	}
	if !errors.Is(EmailValidator(""), ErrEmailEmpty) {
		t.Fatalf("expected ErrEmailEmpty")
	}
	if !errors.Is(EmailValidator("not-an-email"), ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid")
	}
}

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	if err := PasswordValidator("longenough"); err != nil {
		t.Fatalf("PasswordValidator error: %v", err)
	}
	if !errors.Is(PasswordValidator(""), ErrPasswordEmpty) {
		t.Fatalf("expected ErrPasswordEmpty")
	}
	if !errors.Is(PasswordValidator("short"), ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort")
	}
}
