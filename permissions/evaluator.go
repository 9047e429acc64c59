// Package permissions computes role, permission, and subscription decisions
// from a session snapshot. Every function is pure: the evaluator holds only
// the grant table it was constructed with and never mutates session state.
package permissions

import (
	"strings"

	"github.com/rentora/console-client/claims"
	"github.com/rentora/console-client/session"
)

// Grants maps a role to its permission list. Entries use the
// "resource:action" form; "resource:*" grants every action on the resource
// and a bare "*" grants everything. Roles absent from the table hold no
// permissions at all.
type Grants map[claims.Role][]string

// DefaultGrants is the console's built-in grant table. super_admin is
// deliberately absent: it short-circuits every check and never consults the
// table.
var DefaultGrants = Grants{
	claims.RoleAdmin: {
		"cars:*", "bookings:*", "customers:*", "staff:manage", "reports:view",
	},
	claims.RoleManager: {
		"cars:*", "bookings:*", "customers:read",
	},
	claims.RoleAssistant: {
		"cars:read", "bookings:create", "bookings:read", "customers:read",
	},
}

// Evaluator answers access questions about session snapshots.
type Evaluator struct {
	grants Grants
}

// NewEvaluator creates an Evaluator over the given grant table. A nil table
// selects DefaultGrants; tests inject synthetic tables instead.
func NewEvaluator(grants Grants) *Evaluator {
	if grants == nil {
		grants = DefaultGrants
	}
	return &Evaluator{grants: grants}
}

// HasRole reports whether the session's role matches exactly. super_admin
// gets no special treatment here.
func (e *Evaluator) HasRole(snap session.Snapshot, role claims.Role) bool {
	return snap.Role() == role
}

// HasPermission reports whether the session's role grants the given
// "resource:action" permission. super_admin always passes; roles outside the
// grant table never do.
func (e *Evaluator) HasPermission(snap session.Snapshot, permission string) bool {
	role := snap.Role()
	if role.IsSuperAdmin() {
		return true
	}

	granted := e.grants[role]
	for _, g := range granted {
		if g == "*" || g == permission {
			return true
		}
	}

	// "resource:*" covers every action on the resource.
	if resource, _, ok := strings.Cut(permission, ":"); ok {
		for _, g := range granted {
			if g == resource+":*" {
				return true
			}
		}
	}

	return false
}

// HasSubscription reports whether the tenant's tier meets min. super_admin
// bypasses subscription gating entirely.
func (e *Evaluator) HasSubscription(snap session.Snapshot, min session.Tier) bool {
	if snap.Role().IsSuperAdmin() {
		return true
	}
	return snap.Tier.AtLeast(min)
}

// CanAccess reports whether the session satisfies both an optional role
// requirement and an optional tier requirement; failing either denies. The
// zero value of each parameter means no requirement. super_admin satisfies
// the role requirement implicitly and the tier requirement through
// HasSubscription's own bypass.
func (e *Evaluator) CanAccess(snap session.Snapshot, requiredRole claims.Role, requiredTier session.Tier) bool {
	if requiredRole != claims.RoleUnknown && !e.HasRole(snap, requiredRole) && !snap.Role().IsSuperAdmin() {
		return false
	}
	if requiredTier != "" && !e.HasSubscription(snap, requiredTier) {
		return false
	}
	return true
}
