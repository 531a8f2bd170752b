package auth

import (
	"context"

	"carewell/patient-api/internal/model"
	"carewell/patient-api/pkg/security"
)

// ConfirmRegistration validates a confirmation token against the
// already-authenticated session's user, never against a user id the
// caller picked. A token minted for someone else is useless here.
func (s *Service) ConfirmRegistration(ctx context.Context, sess Session, token string) (Result, error) {
	if !sess.Valid() {
		return Result{}, ErrInvalidOrExpiredToken
	}

	action, ok := s.tokens.Verify(sess.UserID, security.PurposeConfirmEmail, token)
	if !ok {
		return Result{}, ErrInvalidOrExpiredToken
	}

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Where("id = ?", action.UserID).
		Update("confirmed", true).
		Error
	if err != nil {
		return Result{}, err
	}

	return Result{
		Message:    "You have confirmed your account.",
		RedirectTo: s.cfg.DefaultLanding,
	}, nil
}
