package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carewell/patient-api/internal/model"
	"carewell/patient-api/pkg/security"
	"carewell/patient-api/pkg/validators"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type RegisterInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	MiddleInitial string
	// DateOfBirth in YYYY-MM-DD form.
	DateOfBirth string
	Weight      float64
	// Allergies is an optional comma-separated list.
	Allergies string
}

// Register creates the user, their patient record and any allergies in
// one transaction, establishes a session and sends the confirmation
// email. A failed send is logged but doesn't undo the registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, Result, error) {
	email := normalizeEmail(in.Email)

	if err := validators.EmailValidator(email); err != nil {
		return Session{}, Result{}, validation(err)
	}
	if err := validators.PasswordValidator(in.Password); err != nil {
		return Session{}, Result{}, validation(err)
	}
	if err := validators.NameValidator(in.FirstName, in.LastName); err != nil {
		return Session{}, Result{}, validation(err)
	}
	if err := validators.WeightValidator(in.Weight); err != nil {
		return Session{}, Result{}, validation(err)
	}

	dob, err := validators.DOBValidator(in.DateOfBirth)
	if err != nil {
		return Session{}, Result{}, validation(err)
	}

	// Fast path only. The unique index on email catches the race where
	// two registrations slip past this check at the same time.
	var taken bool
	err = s.db.WithContext(ctx).
		Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&taken).
		Error
	if err != nil {
		return Session{}, Result{}, err
	}
	if taken {
		return Session{}, Result{}, ErrDuplicateEmail
	}

	hash, err := s.hasher.GenerateFromPassword(in.Password)
	if err != nil {
		return Session{}, Result{}, err
	}

	userID, err := gonanoid.Generate(idAlphabet, 16)
	if err != nil {
		return Session{}, Result{}, err
	}

	patientID, err := gonanoid.Generate(idAlphabet, 16)
	if err != nil {
		return Session{}, Result{}, err
	}

	allergies := parseAllergies(in.Allergies)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.User{
			ID:           userID,
			Email:        email,
			PasswordHash: hash,
		}).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.Patient{
			ID:            patientID,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			MiddleInitial: in.MiddleInitial,
			DateOfBirth:   dob,
			Weight:        in.Weight,
			UserID:        userID,
		}).Error; err != nil {
			return err
		}

		for _, name := range allergies {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Allergy{
				PatientID: patientID,
				Name:      name,
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Session{}, Result{}, ErrDuplicateEmail
		}
		return Session{}, Result{}, err
	}

	token, err := s.tokens.Generate(userID, security.PurposeConfirmEmail)
	if err != nil {
		return Session{}, Result{}, err
	}

	body := fmt.Sprintf("Click <a href='%s'>here</a> to confirm your account.<br><br>%s",
		s.confirmLink(token), expiryNote(s.tokens.Validity()))

	if err := s.mailer.Send(email, "Confirm Your Account", body); err != nil {
		zap.L().Error("Failed to send confirmation email", zap.Error(err), zap.String("userID", userID))
	}

	sess := Session{
		UserID:    userID,
		PatientID: patientID,
	}

	return sess, Result{
		Message:    "A confirmation email has been sent",
		RedirectTo: s.cfg.DefaultLanding,
	}, nil
}

// parseAllergies splits the comma-separated form value, trims and
// lowercases the entries and drops repeats and empties.
func parseAllergies(raw string) []string {
	if raw == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string

	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
