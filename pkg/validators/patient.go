package validators

import (
	"errors"
	"time"
)

var (
	ErrNameEmpty      = errors.New("first and last name are required")
	ErrDOBEmpty       = errors.New("no date of birth provided")
	ErrDOBInvalid     = errors.New("date of birth must be in YYYY-MM-DD format")
	ErrDOBInFuture    = errors.New("date of birth can't be in the future")
	ErrWeightNegative = errors.New("weight can't be negative")
)

// DOBValidator parses an ISO formatted date of birth.
func DOBValidator(dob string) (time.Time, error) {
	if dob == "" {
		return time.Time{}, ErrDOBEmpty
	}

	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return time.Time{}, ErrDOBInvalid
	}

	if parsed.After(time.Now()) {
		return time.Time{}, ErrDOBInFuture
	}

	return parsed, nil
}

func NameValidator(first, last string) error {
	if first == "" || last == "" {
		return ErrNameEmpty
	}

	return nil
}

func WeightValidator(w float64) error {
	if w < 0 {
		return ErrWeightNegative
	}

	return nil
}
