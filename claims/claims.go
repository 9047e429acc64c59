// Package claims decodes the console's bearer tokens into a typed claims
// record. It is the only place in the client that constructs Claims; every
// other component receives them through the session store.
package claims

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMalformedToken is returned for any token that cannot be decoded
	// into well-formed claims.
	ErrMalformedToken = errors.New("malformed token")

	// ErrMissingClaim is returned when a required claim is absent.
	ErrMissingClaim = errors.New("missing required claim")
)

// Role is the tenant-scoped role carried in the token. The set is closed;
// anything the server sends outside it maps to RoleUnknown, which grants
// nothing but is not an error.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleOwner      Role = "owner"
	RoleManager    Role = "manager"
	RoleAssistant  Role = "assistant"
	RoleUnknown    Role = ""
)

// ParseRole maps a raw role string onto the closed role set.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleOwner, RoleManager, RoleAssistant:
		return Role(raw)
	default:
		return RoleUnknown
	}
}

// IsSuperAdmin reports whether the role is the platform operator role.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// Claims is the decoded payload of a bearer token.
type Claims struct {
	Subject   uuid.UUID
	TenantID  uuid.UUID
	Role      Role
	ExpiresAt time.Time
}

// Expired reports whether the expiry claim is in the past. Decode does not
// enforce this: an expired token keeps its role client-side until the server
// answers 401 and the session forces a logout.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// tokenClaims is the raw JWT payload shape.
type tokenClaims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Decode parses a bearer token into Claims without verifying its signature;
// verification is the server's job and the client only needs the payload.
// Any parse or format failure yields an error wrapping ErrMalformedToken.
// Decode never panics.
func Decode(raw string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	payload := &tokenClaims{}
	if _, _, err := parser.ParseUnverified(raw, payload); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if payload.Subject == "" {
		return Claims{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	sub, err := uuid.Parse(payload.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid sub: %v", ErrMalformedToken, err)
	}

	if payload.TenantID == "" {
		return Claims{}, fmt.Errorf("%w: tenant_id", ErrMissingClaim)
	}
	tenantID, err := uuid.Parse(payload.TenantID)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid tenant_id: %v", ErrMalformedToken, err)
	}

	decoded := Claims{
		Subject:  sub,
		TenantID: tenantID,
		Role:     ParseRole(payload.Role),
	}
	if payload.ExpiresAt != nil {
		decoded.ExpiresAt = payload.ExpiresAt.Time
	}

	return decoded, nil
}

// DecodeRole extracts only the role from a token (fast path for the guard).
// A token that fails to decode yields RoleUnknown, never an error.
func DecodeRole(raw string) Role {
	decoded, err := Decode(raw)
	if err != nil {
		return RoleUnknown
	}
	return decoded.Role
}
