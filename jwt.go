package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errTokenExpired   = errors.New("token expired")
	errTokenMalformed = errors.New("token malformed")
)

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenAuth signs and verifies bearer tokens. Secret and TTL are fixed
// process-wide configuration injected at startup.
type TokenAuth struct {
	secret []byte
	ttl    time.Duration
}

func newTokenAuth(secret string, ttl time.Duration) *TokenAuth {
	return &TokenAuth{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed HS256 token for userID, valid for the configured TTL.
func (t *TokenAuth) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses raw and returns the embedded user id. Expired tokens map to
// errTokenExpired; anything else that fails to parse or verify, including a
// non-HMAC alg header, maps to errTokenMalformed. No I/O happens here.
func (t *TokenAuth) Verify(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errTokenMalformed
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errTokenExpired
		}
		return "", errTokenMalformed
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", errTokenMalformed
	}
	return claims.UserID, nil
}
