package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenLifetime = 7 * 24 * time.Hour
	// warn once the token is older than six and a half days
	TokenWarnWindow = 12 * time.Hour
)

type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenExpired
	TokenMalformed
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenExpired:
		return "expired"
	case TokenMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

type TokenInfo struct {
	Status TokenStatus
	// ExpiresAt is zero when the expiry cannot be determined
	ExpiresAt    time.Time
	ExpiringSoon bool
}

// InspectToken judges a token locally. JWTs are judged by their exp (or iat)
// claim, read without verifying the signature; opaque tokens by the time they
// were issued.
func InspectToken(token string, issuedAt, now time.Time) TokenInfo {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenInfo{Status: TokenMalformed}
	}

	var expiresAt time.Time
	if strings.Count(token, ".") == 2 {
		claims := &jwt.RegisteredClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return TokenInfo{Status: TokenMalformed}
		}
		switch {
		case claims.ExpiresAt != nil:
			expiresAt = claims.ExpiresAt.Time
		case claims.IssuedAt != nil:
			expiresAt = claims.IssuedAt.Add(TokenLifetime)
		}
	}

	if expiresAt.IsZero() && !issuedAt.IsZero() {
		expiresAt = issuedAt.Add(TokenLifetime)
	}

	if expiresAt.IsZero() {
		return TokenInfo{Status: TokenValid}
	}

	if !now.Before(expiresAt) {
		return TokenInfo{Status: TokenExpired, ExpiresAt: expiresAt}
	}

	return TokenInfo{
		Status:       TokenValid,
		ExpiresAt:    expiresAt,
		ExpiringSoon: expiresAt.Sub(now) <= TokenWarnWindow,
	}
}
