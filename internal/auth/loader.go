package auth

import (
	"context"
	"errors"

	"carewell/patient-api/internal/model"

	"gorm.io/gorm"
)

// UserLoader resolves the user behind a restored session. It is an
// explicit dependency of the session middleware instead of a globally
// registered hook.
type UserLoader func(ctx context.Context, userID string) (*model.User, error)

// LoadUser looks a user up by id for session restoration.
func (s *Service) LoadUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
