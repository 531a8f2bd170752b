// Package auth implements the authentication flows: login, registration,
// email confirmation, logout and password reset. Flows are plain
// functions over explicit inputs, they return a Result plus a Session
// value where one is established and leave rendering and cookie
// handling to the transport layer.
package auth

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"carewell/patient-api/internal/mail"
	"carewell/patient-api/pkg/security"

	"gorm.io/gorm"
)

// Result is the outcome of a flow: a one-shot user-facing message and
// where the client should go next.
type Result struct {
	Message    string
	RedirectTo string
}

type Config struct {
	// BaseURL is the absolute prefix used in emailed links.
	BaseURL string
	// DefaultLanding is where a logged-in user ends up when no safe
	// "next" target was supplied.
	DefaultLanding string
}

type Service struct {
	db     *gorm.DB
	hasher *security.Hasher
	tokens *security.TokenIssuer
	mailer mail.Mailer
	cfg    Config
}

func NewService(db *gorm.DB, hasher *security.Hasher, tokens *security.TokenIssuer, mailer mail.Mailer, cfg Config) *Service {
	if cfg.DefaultLanding == "" {
		cfg.DefaultLanding = "/profile"
	}

	return &Service{
		db:     db,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// safeNext only honors same-origin relative paths, anything else falls
// back to the default landing page. "//host" would be treated as
// protocol-relative by browsers so it doesn't count.
func (s *Service) safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return s.cfg.DefaultLanding
	}

	return next
}

func (s *Service) confirmLink(token string) string {
	return fmt.Sprintf("%s/api/users/confirm?token=%s", s.cfg.BaseURL, url.QueryEscape(token))
}

func (s *Service) resetLink(email, token string) string {
	return fmt.Sprintf("%s/api/users/confirm_reset?email=%s&token=%s",
		s.cfg.BaseURL, url.QueryEscape(email), url.QueryEscape(token))
}

func expiryNote(d time.Duration) string {
	return fmt.Sprintf("This link will expire in %d minutes", int(d.Minutes()))
}
