package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the association a login establishes between a user and
// their patient record. It only lives inside the signed cookie the
// transport layer manages, nothing is persisted server-side.
type Session struct {
	UserID    string
	PatientID string
}

func (s Session) Valid() bool {
	return s.UserID != ""
}

type sessionClaims struct {
	jwt.RegisteredClaims
	PatientID string `json:"patient_id"`
}

// SignSession encodes a session as an HS256 JWT for the auth cookie.
func SignSession(s Session, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		PatientID: s.PatientID,
	})

	return token.SignedString(secret)
}

// ParseSession restores a session from its cookie form. An expired or
// tampered token yields an error and the caller treats the request as
// anonymous.
func ParseSession(tokenStr string, secret []byte) (Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return Session{}, err
	}

	if !token.Valid {
		return Session{}, jwt.ErrTokenInvalidClaims
	}

	return Session{
		UserID:    claims.Subject,
		PatientID: claims.PatientID,
	}, nil
}
