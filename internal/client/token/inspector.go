// Package token inspects access tokens on the client side.
//
// The inspection is an optimization to avoid sending requests that are
// guaranteed to be rejected; the server remains the authority on token
// validity. The payload is decoded without verifying the signature.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Grace is the clock-skew tolerance subtracted from "now" before the
// expiry comparison.
const Grace = 5 * time.Second

// IsExpired reports whether the token should be treated as expired.
//
// Policy:
//   - empty token: expired (fail closed)
//   - malformed or undecodable token: expired (fail closed)
//   - no exp claim: NOT expired. Tokens without an expiry are treated as
//     non-expiring on purpose; the backend issues such tokens for
//     service accounts and the server-side check still applies.
//   - otherwise: expired iff exp < now - Grace
func IsExpired(tok string) bool {
	return IsExpiredAt(tok, time.Now())
}

// IsExpiredAt is IsExpired with an explicit clock, for tests.
func IsExpiredAt(tok string, now time.Time) bool {
	if tok == "" {
		return true
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Time.Before(now.Add(-Grace))
}
