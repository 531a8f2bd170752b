package internal

import (
	"time"

	"carewell/patient-api/internal/auth"
	"carewell/patient-api/internal/mail"
	"carewell/patient-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB            *gorm.DB
	Hasher        *security.Hasher
	Tokens        *security.TokenIssuer
	Mailer        mail.Mailer
	Auth          *auth.Service
	SessionSecret []byte
	SessionTTL    time.Duration
}
