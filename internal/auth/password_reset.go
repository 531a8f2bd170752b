package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"carewell/patient-api/internal/model"
	"carewell/patient-api/pkg/security"
	"carewell/patient-api/pkg/validators"

	"gorm.io/gorm"
)

// ForgotPassword mails a reset link to the stored address of the
// account, never to one the caller supplied. An unknown email is
// reported as such, matching the existing product behavior.
func (s *Service) ForgotPassword(ctx context.Context, email string) (Result, error) {
	email = normalizeEmail(email)
	if err := validators.EmailValidator(email); err != nil {
		return Result{}, validation(err)
	}

	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, err
	}

	token, err := s.tokens.Generate(user.ID, security.PurposeResetPassword)
	if err != nil {
		return Result{}, err
	}

	body := fmt.Sprintf("Click <a href='%s'>here</a> to reset your password.<br><br>%s",
		s.resetLink(user.Email, token), expiryNote(s.tokens.Validity()))

	if err := s.mailer.Send(user.Email, "Reset Password", body); err != nil {
		return Result{}, err
	}

	return Result{
		Message: "An email was sent to reset your password.",
	}, nil
}

// ConfirmPasswordReset checks the emailed {email, token} pair and hands
// back the reset form location on success. Failures are deliberately
// indistinguishable from each other.
func (s *Service) ConfirmPasswordReset(ctx context.Context, email, token string) (Result, error) {
	email = normalizeEmail(email)

	if _, err := s.verifyResetToken(ctx, email, token); err != nil {
		return Result{}, err
	}

	return Result{
		RedirectTo: "/reset_password?email=" + url.QueryEscape(email),
	}, nil
}

type ResetPasswordInput struct {
	Email    string
	Token    string
	Password string
}

// ResetPassword re-validates the token, overwrites the stored hash and
// spends the token's jti so the same link can't reset the password a
// second time.
func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) (Result, error) {
	email := normalizeEmail(in.Email)

	if err := validators.PasswordValidator(in.Password); err != nil {
		return Result{}, validation(err)
	}

	action, err := s.verifyResetToken(ctx, email, in.Token)
	if err != nil {
		return Result{}, err
	}

	hash, err := s.hasher.GenerateFromPassword(in.Password)
	if err != nil {
		return Result{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.User{}).
			Where("id = ?", action.UserID).
			Update("password_hash", hash).
			Error
		if err != nil {
			return err
		}

		// The unique index on jti settles the race between two
		// submissions of the same link.
		return tx.Create(&model.RedeemedToken{
			JTI:       action.JTI,
			UserID:    action.UserID,
			Purpose:   action.Purpose,
			ExpiresAt: action.ExpiresAt,
			CreatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Result{}, ErrInvalidOrExpiredToken
		}
		return Result{}, err
	}

	return Result{
		Message:    "Password successfully changed. Please login with the new password.",
		RedirectTo: "/login",
	}, nil
}

// verifyResetToken resolves the account, checks the token's signature,
// expiry, subject and purpose, and rejects an already-spent jti.
func (s *Service) verifyResetToken(ctx context.Context, email, token string) (*security.ActionToken, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	action, ok := s.tokens.Verify(user.ID, security.PurposeResetPassword, token)
	if !ok {
		return nil, ErrInvalidOrExpiredToken
	}

	var spent bool
	err = s.db.WithContext(ctx).
		Model(model.RedeemedToken{}).
		Select("count(*) > 0").
		Where("jti = ?", action.JTI).
		Find(&spent).
		Error
	if err != nil {
		return nil, err
	}
	if spent {
		return nil, ErrInvalidOrExpiredToken
	}

	return action, nil
}
