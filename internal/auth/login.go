package auth

import (
	"context"
	"errors"

	"carewell/patient-api/internal/model"

	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string
	Password string
	// Next is the caller-supplied post-login destination. Only
	// same-origin relative paths are honored.
	Next string
}

// Login verifies the credentials and establishes a session binding the
// user to their patient record. Unknown email and wrong password fail
// with the same error so the response doesn't reveal which field was
// wrong.
func (s *Service) Login(ctx context.Context, in LoginInput) (Session, Result, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, Result{}, ErrInvalidCredentials
	}

	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, Result{}, ErrInvalidCredentials
		}
		return Session{}, Result{}, err
	}

	if !s.hasher.VerifyPassword(in.Password, user.PasswordHash) {
		return Session{}, Result{}, ErrInvalidCredentials
	}

	var patient model.Patient
	err = s.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&patient).Error
	if err != nil {
		// Registration creates the patient row in the same transaction
		// as the user, a missing one is a storage fault.
		return Session{}, Result{}, err
	}

	sess := Session{
		UserID:    user.ID,
		PatientID: patient.ID,
	}

	return sess, Result{
		Message:    "Logged in",
		RedirectTo: s.safeNext(in.Next),
	}, nil
}

// Logout always succeeds. The transport layer clears the session
// cookie, the flow only decides the message and destination.
func (s *Service) Logout(Session) Result {
	return Result{
		Message:    "You have been logged out",
		RedirectTo: "/",
	}
}
