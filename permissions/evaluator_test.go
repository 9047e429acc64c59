package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentora/console-client/claims"
	"github.com/rentora/console-client/session"
)

func snapshotFor(role claims.Role, tier session.Tier) session.Snapshot {
	snap := session.Snapshot{Tier: tier}
	if role != claims.RoleUnknown {
		snap.Token = "token"
		snap.Claims = &claims.Claims{Role: role}
	}
	return snap
}

func TestHasRole(t *testing.T) {
	eval := NewEvaluator(nil)

	assert.True(t, eval.HasRole(snapshotFor(claims.RoleManager, session.TierNormal), claims.RoleManager))
	assert.False(t, eval.HasRole(snapshotFor(claims.RoleManager, session.TierNormal), claims.RoleOwner))

	// exact match only: super_admin is not special-cased here
	assert.False(t, eval.HasRole(snapshotFor(claims.RoleSuperAdmin, session.TierNormal), claims.RoleOwner))
}

func TestHasPermission(t *testing.T) {
	eval := NewEvaluator(nil)

	t.Run("super admin short-circuits", func(t *testing.T) {
		snap := snapshotFor(claims.RoleSuperAdmin, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "cars:write"))
		assert.True(t, eval.HasPermission(snap, "anything:at-all"))
	})

	t.Run("resource wildcard grants every action", func(t *testing.T) {
		snap := snapshotFor(claims.RoleManager, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "cars:read"))
		assert.True(t, eval.HasPermission(snap, "cars:write"))
		assert.True(t, eval.HasPermission(snap, "cars:delete"))
	})

	t.Run("exact grants match only their action", func(t *testing.T) {
		snap := snapshotFor(claims.RoleManager, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "customers:read"))
		assert.False(t, eval.HasPermission(snap, "customers:write"))
	})

	t.Run("assistant cannot write cars", func(t *testing.T) {
		snap := snapshotFor(claims.RoleAssistant, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "cars:read"))
		assert.False(t, eval.HasPermission(snap, "cars:write"))
	})

	t.Run("roles outside the table hold nothing", func(t *testing.T) {
		for _, perm := range []string{"cars:read", "bookings:read", "reports:view", "*"} {
			assert.False(t, eval.HasPermission(snapshotFor(claims.RoleOwner, session.TierPremium), perm))
			assert.False(t, eval.HasPermission(snapshotFor(claims.RoleUnknown, session.TierPremium), perm))
		}
	})

	t.Run("bare wildcard grants everything", func(t *testing.T) {
		eval := NewEvaluator(Grants{claims.RoleAssistant: {"*"}})
		snap := snapshotFor(claims.RoleAssistant, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "cars:write"))
		assert.True(t, eval.HasPermission(snap, "staff:manage"))
	})

	t.Run("synthetic grant table", func(t *testing.T) {
		eval := NewEvaluator(Grants{claims.RoleOwner: {"reports:*"}})
		snap := snapshotFor(claims.RoleOwner, session.TierNormal)
		assert.True(t, eval.HasPermission(snap, "reports:export"))
		assert.False(t, eval.HasPermission(snap, "cars:read"))
	})
}

func TestHasSubscription(t *testing.T) {
	eval := NewEvaluator(nil)

	t.Run("tier ordering", func(t *testing.T) {
		normal := snapshotFor(claims.RoleOwner, session.TierNormal)
		pro := snapshotFor(claims.RoleOwner, session.TierPro)
		premium := snapshotFor(claims.RoleOwner, session.TierPremium)

		assert.False(t, eval.HasSubscription(normal, session.TierPro))
		assert.True(t, eval.HasSubscription(pro, session.TierPro))
		assert.True(t, eval.HasSubscription(premium, session.TierPro))

		assert.False(t, eval.HasSubscription(pro, session.TierPremium))
		assert.True(t, eval.HasSubscription(premium, session.TierPremium))
	})

	t.Run("unknown tier ranks below normal", func(t *testing.T) {
		snap := snapshotFor(claims.RoleOwner, session.Tier("enterprise"))
		assert.False(t, eval.HasSubscription(snap, session.TierNormal))
		assert.False(t, eval.HasSubscription(snap, session.TierPro))
	})

	t.Run("super admin bypasses tier gating", func(t *testing.T) {
		snap := snapshotFor(claims.RoleSuperAdmin, session.TierNormal)
		assert.True(t, eval.HasSubscription(snap, session.TierPremium))
	})
}

func TestCanAccess(t *testing.T) {
	eval := NewEvaluator(nil)

	t.Run("requires both role and tier", func(t *testing.T) {
		ownerPro := snapshotFor(claims.RoleOwner, session.TierPro)
		assert.True(t, eval.CanAccess(ownerPro, claims.RoleOwner, session.TierPro))
		assert.False(t, eval.CanAccess(ownerPro, claims.RoleManager, session.TierPro))
		assert.False(t, eval.CanAccess(ownerPro, claims.RoleOwner, session.TierPremium))
	})

	t.Run("no requirements allows everyone", func(t *testing.T) {
		assert.True(t, eval.CanAccess(snapshotFor(claims.RoleUnknown, session.TierNormal), claims.RoleUnknown, ""))
	})

	t.Run("super admin is exempt from both checks", func(t *testing.T) {
		snap := snapshotFor(claims.RoleSuperAdmin, session.TierNormal)
		assert.True(t, eval.CanAccess(snap, claims.RoleOwner, session.TierPremium))
	})

	t.Run("tier-only requirement", func(t *testing.T) {
		assert.True(t, eval.CanAccess(snapshotFor(claims.RoleAssistant, session.TierPremium), claims.RoleUnknown, session.TierPro))
		assert.False(t, eval.CanAccess(snapshotFor(claims.RoleAssistant, session.TierNormal), claims.RoleUnknown, session.TierPro))
	})
}
