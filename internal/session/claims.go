package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the fields this client reads from a decoded access token.
// The token is decoded without signature verification. Signatures are the
// server's concern; locally the payload is only used for display and for
// reporting when the token will expire.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiresIn returns how long until the token expires. Negative when already
// expired, zero when the token carries no expiry claim.
func (c *Claims) ExpiresIn() time.Duration {
	if c.ExpiresAt.IsZero() {
		return 0
	}

	return time.Until(c.ExpiresAt)
}

// Claims decodes the payload of the currently stored access token.
// Results are memoized per token string, so repeated calls for the same
// token do not re-parse it.
func (m *Manager) Claims() (*Claims, error) {
	token := m.AccessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	if claims, ok := m.claimsCache.Get(token); ok {
		return claims, nil
	}

	claims, err := decodeClaims(token)
	if err != nil {
		return nil, err
	}

	m.claimsCache.Add(token, claims)

	return claims, nil
}

// decodeClaims extracts the payload of a JWT without verifying its signature.
func decodeClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to decode access token: unexpected claims type %T", parsed.Claims)
	}

	claims := &Claims{
		Subject: stringClaim(mapClaims, "sub"),
		Email:   stringClaim(mapClaims, "email"),
		Name:    stringClaim(mapClaims, "name"),
		Role:    stringClaim(mapClaims, "role"),
	}

	// The email commonly doubles as the subject.
	if claims.Email == "" {
		claims.Email = claims.Subject
	}

	if issuedAt, issuedErr := mapClaims.GetIssuedAt(); issuedErr == nil && issuedAt != nil {
		claims.IssuedAt = issuedAt.Time
	}

	if expiresAt, expErr := mapClaims.GetExpirationTime(); expErr == nil && expiresAt != nil {
		claims.ExpiresAt = expiresAt.Time
	}

	return claims, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	value, _ := claims[name].(string)

	return value
}
