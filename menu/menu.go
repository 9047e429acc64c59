// Package menu maps a role to the ordered navigation menu that role sees.
// The resolver is a pure lookup: tier and badge annotations are attached as
// metadata for the consuming UI, which owns their enforcement.
package menu

import (
	"github.com/rentora/console-client/claims"
	"github.com/rentora/console-client/routes"
	"github.com/rentora/console-client/session"
)

// Item is one menu entry. Icon is a symbolic icon name for the UI layer.
type Item struct {
	Icon         string
	Label        string
	Path         string
	RequiredRole claims.Role
	RequiredTier session.Tier
	Badge        string
	Readonly     bool
	Children     []Item
}

// Menus maps a role to its menu definition.
type Menus map[claims.Role][]Item

// DefaultMenus is the console's built-in menu set. admin shares the owner
// menu, and unrecognized roles fall back to it too; see Resolver.Resolve.
var DefaultMenus = Menus{
	claims.RoleSuperAdmin: {
		{Icon: "layout-dashboard", Label: "Overview", Path: routes.AdminDashboard},
		{Icon: "building", Label: "Shops", Path: routes.AdminDashboard},
		{Icon: "bar-chart", Label: "Analytics", Path: routes.AdminAnalytics},
		{Icon: "server", Label: "System Health", Path: routes.AdminHealth},
		{Icon: "credit-card", Label: "Billing", Path: routes.AdminBilling},
	},
	claims.RoleOwner: {
		{Icon: "layout-dashboard", Label: "Dashboard", Path: routes.Dashboard},
		{Icon: "car", Label: "Fleet", Path: routes.Cars},
		{Icon: "calendar", Label: "Bookings", Path: routes.Bookings},
		{Icon: "users", Label: "Customers", Path: routes.Customers},
		{Icon: "user-cog", Label: "Staff", Path: routes.Staff, RequiredTier: session.TierPro, Badge: "PRO"},
		{Icon: "dollar-sign", Label: "Financials", Path: routes.Financials, RequiredTier: session.TierPro, Badge: "PRO"},
		{Icon: "palette", Label: "Marketing", Path: routes.Marketing, RequiredTier: session.TierPremium, Badge: "PREMIUM"},
		{Icon: "file-text", Label: "Reports", Path: routes.Reports},
		{Icon: "settings", Label: "Settings", Path: routes.Profile},
	},
	claims.RoleManager: {
		{Icon: "layout-dashboard", Label: "Dashboard", Path: routes.Dashboard},
		{Icon: "car", Label: "Fleet", Path: routes.Cars},
		{Icon: "calendar", Label: "Bookings", Path: routes.Bookings},
		{Icon: "users", Label: "Customers", Path: routes.Customers},
		{Icon: "file-text", Label: "Reports", Path: routes.Reports, Readonly: true},
	},
	claims.RoleAssistant: {
		{Icon: "layout-dashboard", Label: "Dashboard", Path: routes.Dashboard, Readonly: true},
		{Icon: "car", Label: "View Cars", Path: routes.Cars, Readonly: true},
		{Icon: "calendar", Label: "Bookings", Path: routes.Bookings},
		{Icon: "users", Label: "Customers", Path: routes.Customers, Readonly: true},
	},
}

// Resolver looks up menus by role.
type Resolver struct {
	menus Menus
}

// NewResolver creates a Resolver over the given menu table. A nil table
// selects DefaultMenus.
func NewResolver(menus Menus) *Resolver {
	if menus == nil {
		menus = DefaultMenus
	}
	return &Resolver{menus: menus}
}

// Resolve returns the ordered menu for a role. admin resolves to the owner
// menu, and any role without a menu of its own falls back to the owner menu
// as well. Items are returned with their tier gates intact; nothing is
// filtered here.
func (r *Resolver) Resolve(role claims.Role) []Item {
	if role == claims.RoleAdmin {
		role = claims.RoleOwner
	}
	if items, ok := r.menus[role]; ok {
		return items
	}
	return r.menus[claims.RoleOwner]
}
