package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"  // secure random generation for the fallback signing key
	"encoding/hex" // hex encoding of the generated key
	"errors"       // sentinel errors for token validation
	"time"         // expiry computation

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string.  Exp stores the UTC
// expiration time.  Access tokens are carried in the Authorization header
// using the bearer scheme when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned when a token fails signature validation, is
// expired, or does not carry a usable subject claim.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a customer.  The subject
// claim carries the customer's email, which is the identity every protected
// handler works with.  ttlMin controls the token lifetime in minutes.
func NewAccessToken(secret, email string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": email,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseSubject validates a signed token and returns its subject (the
// customer email).  It rejects tokens signed with a non-HMAC method, with a
// bad signature, expired, or lacking a non-empty string subject.  Expiry is
// checked by the jwt library because the token was issued with an "exp" claim.
func ParseSubject(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// RandomSecret returns a hex-encoded signing key generated from n bytes of
// cryptographically secure random data.  It backs the per-process key used
// when no JWT_SECRET is configured; every token issued before a restart
// becomes invalid afterwards.
func RandomSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
