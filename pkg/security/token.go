package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Purposes an action token can be minted for. A token is only ever
// valid for the purpose it was generated with.
const (
	PurposeConfirmEmail  = "confirm_email"
	PurposeResetPassword = "reset_password"
)

// ActionToken is the verified content of a signed action token.
type ActionToken struct {
	UserID    string
	Purpose   string
	JTI       string
	ExpiresAt time.Time
}

type actionClaims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// TokenIssuer mints and verifies the signed, time-limited tokens used
// to authorize email confirmation and password resets. Tokens are
// stateless, possession of a valid one is the authorization.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(secret []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   secret,
		validity: validity,
	}
}

// Validity is the window a freshly minted token stays valid for.
func (ti *TokenIssuer) Validity() time.Duration {
	return ti.validity
}

// Generate mints a token bound to userID and purpose with a fresh jti.
func (ti *TokenIssuer) Generate(userID, purpose string) (string, error) {
	jti, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, actionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.validity)),
		},
		Purpose: purpose,
	})

	return token.SignedString(ti.secret)
}

// Verify checks signature, expiry, purpose and subject. It never
// returns an error, a malformed or forged token is simply not valid.
func (ti *TokenIssuer) Verify(userID, purpose, tokenStr string) (*ActionToken, bool) {
	claims := &actionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return ti.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	if claims.Subject != userID || claims.Purpose != purpose {
		return nil, false
	}

	if claims.ExpiresAt == nil {
		return nil, false
	}

	return &ActionToken{
		UserID:    claims.Subject,
		Purpose:   claims.Purpose,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}

// Confirm reports whether tokenStr is a valid token for userID and purpose.
func (ti *TokenIssuer) Confirm(userID, purpose, tokenStr string) bool {
	_, ok := ti.Verify(userID, purpose, tokenStr)
	return ok
}
