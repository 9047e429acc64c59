// Package routes defines the stable route identifiers the console client
// navigates between. The guard, the session store, and the menu tables all
// reference these paths; renaming one is a breaking change for consumers.
package routes

// Public pages.
const (
	Login  = "/login"
	Signup = "/signup"
)

// Dashboard pages.
const (
	Dashboard  = "/dashboard"
	Cars       = "/dashboard/cars"
	Bookings   = "/dashboard/bookings"
	Customers  = "/dashboard/customers"
	Staff      = "/dashboard/staff"
	Financials = "/dashboard/financials"
	Marketing  = "/dashboard/marketing"
	Reports    = "/dashboard/reports"
	Profile    = "/dashboard/profile"
)

// Platform administration pages. Everything under AdminPrefix requires the
// super_admin role.
const (
	AdminPrefix    = "/dashboard/admin"
	AdminDashboard = "/dashboard/admin/dashboard"
	AdminAnalytics = "/dashboard/admin/analytics"
	AdminHealth    = "/dashboard/admin/health"
	AdminBilling   = "/dashboard/admin/billing"
)

// Forbidden is where the guard sends authenticated users who fail the
// admin-prefix role check.
const Forbidden = "/403"

// Landing returns the post-login destination for a role: platform operators
// land on the admin dashboard, everyone else on the tenant dashboard.
func Landing(isSuperAdmin bool) string {
	if isSuperAdmin {
		return AdminDashboard
	}
	return Dashboard
}
