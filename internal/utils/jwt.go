package utils // helpers for session token creation and password hashing

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a signed JWT identifying an authenticated user, together
// with its expiry. The token travels in an HttpOnly cookie; nothing is kept
// server-side, so expiry is the only thing that ends a session besides the
// client discarding the cookie.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a user. The claims are
// the standard subject (sub), expiration (exp) and issued-at (iat); keeping
// the payload minimal keeps the cookie small.
func NewSessionToken(secret, userID string, ttl time.Duration) (SessionToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies signature and expiry and returns the embedded
// user id. A bad, expired or foreign token is a normal outcome, reported as
// ok=false rather than an error: callers treat it simply as "no session".
func ParseSessionToken(secret, raw string) (string, bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
