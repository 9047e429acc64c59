// Package guard makes the per-navigation access decision for the console
// client. It composes the session snapshot with the route contract and fails
// safe: anything ambiguous resolves to a redirect, never to an allow.
package guard

import (
	"strings"

	"go.uber.org/zap"

	"github.com/rentora/console-client/routes"
	"github.com/rentora/console-client/session"
)

// Destination describes where a navigation is headed.
type Destination struct {
	// Path is the target route path.
	Path string

	// RequiresAuth marks routes that need a token, mirroring the route
	// table's requiresAuth metadata.
	RequiresAuth bool
}

// Decision is the guard's verdict. When Allowed is false, Redirect names
// where to send the user instead.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Allow is the verdict that lets the navigation proceed.
func Allow() Decision {
	return Decision{Allowed: true}
}

// RedirectTo is the verdict that diverts the navigation to path.
func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

// Guard evaluates navigation decisions against session snapshots.
type Guard struct {
	logger *zap.Logger
}

// New creates a Guard.
func New(logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{logger: logger}
}

// Decide evaluates the destination against the session, short-circuiting on
// the first matching rule:
//
//  1. Auth-required destination without a token redirects to login.
//  2. Admin-prefixed path without the super_admin role redirects to the
//     forbidden page.
//  3. Login/signup with a token in hand redirects to the role's landing
//     page.
//  4. Otherwise the navigation is allowed.
//
// A token whose claims failed to decode carries no role, so admin paths
// treat it like any non-super_admin session.
func (g *Guard) Decide(dest Destination, snap session.Snapshot) Decision {
	if dest.RequiresAuth && !snap.Authenticated() {
		g.logger.Debug("navigation requires authentication",
			zap.String("path", dest.Path))
		return RedirectTo(routes.Login)
	}

	if strings.HasPrefix(dest.Path, routes.AdminPrefix) && !snap.Role().IsSuperAdmin() {
		g.logger.Warn("admin route denied",
			zap.String("path", dest.Path),
			zap.String("role", snap.Role().String()))
		return RedirectTo(routes.Forbidden)
	}

	if snap.Authenticated() && (dest.Path == routes.Login || dest.Path == routes.Signup) {
		return RedirectTo(routes.Landing(snap.Role().IsSuperAdmin()))
	}

	return Allow()
}
