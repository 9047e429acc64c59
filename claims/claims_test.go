package claims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, payload jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	raw, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return raw
}

func TestDecode(t *testing.T) {
	sub := uuid.New()
	tenant := uuid.New()

	t.Run("valid token decodes into typed claims", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		raw := signedToken(t, jwt.MapClaims{
			"sub":       sub.String(),
			"tenant_id": tenant.String(),
			"role":      "owner",
			"exp":       exp.Unix(),
		})

		decoded, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, sub, decoded.Subject)
		assert.Equal(t, tenant, decoded.TenantID)
		assert.Equal(t, RoleOwner, decoded.Role)
		assert.True(t, decoded.ExpiresAt.Equal(exp))
		assert.False(t, decoded.Expired(time.Now()))
	})

	t.Run("expired token still decodes", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":       sub.String(),
			"tenant_id": tenant.String(),
			"role":      "manager",
			"exp":       time.Now().Add(-time.Hour).Unix(),
		})

		decoded, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, RoleManager, decoded.Role)
		assert.True(t, decoded.Expired(time.Now()))
	})

	t.Run("unrecognized role maps to RoleUnknown", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":       sub.String(),
			"tenant_id": tenant.String(),
			"role":      "superuser",
		})

		decoded, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, RoleUnknown, decoded.Role)
		assert.False(t, decoded.Role.IsSuperAdmin())
	})

	t.Run("malformed tokens return an error, never panic", func(t *testing.T) {
		malformed := []string{
			"",
			"not-a-token",
			"a.b",
			"a.b.c.d",
			"!!!.###.$$$",
			"eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig",
		}
		for _, raw := range malformed {
			_, err := Decode(raw)
			assert.ErrorIs(t, err, ErrMalformedToken, "token %q", raw)
		}
	})

	t.Run("missing sub is rejected", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"tenant_id": tenant.String(),
			"role":      "owner",
		})

		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMissingClaim)
	})

	t.Run("missing tenant_id is rejected", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":  sub.String(),
			"role": "owner",
		})

		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMissingClaim)
	})

	t.Run("non-uuid sub is malformed", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":       "user-42",
			"tenant_id": tenant.String(),
			"role":      "owner",
		})

		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestDecodeRole(t *testing.T) {
	t.Run("valid token yields its role", func(t *testing.T) {
		raw := signedToken(t, jwt.MapClaims{
			"sub":       uuid.NewString(),
			"tenant_id": uuid.NewString(),
			"role":      "super_admin",
		})
		assert.Equal(t, RoleSuperAdmin, DecodeRole(raw))
	})

	t.Run("malformed token degrades to RoleUnknown", func(t *testing.T) {
		assert.Equal(t, RoleUnknown, DecodeRole("garbage"))
	})
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleSuperAdmin, ParseRole("super_admin"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleOwner, ParseRole("owner"))
	assert.Equal(t, RoleManager, ParseRole("manager"))
	assert.Equal(t, RoleAssistant, ParseRole("assistant"))
	assert.Equal(t, RoleUnknown, ParseRole("intern"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
}
