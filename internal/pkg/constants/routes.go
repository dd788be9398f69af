package constants

// Static route constants
const (
	AuthRegisterRoute = "/auth/register"
	AuthLoginRoute    = "/auth/login"
	AuthLogoutRoute   = "/auth/logout"
	MeRoute           = "/me"
	MeRewardsRoute    = "/me/rewards"
	ReportsRoute      = "/reports"
	MyReportsRoute    = "/reports/mine"
	RewardsRoute      = "/rewards"
	RedeemRoute       = "/rewards/:id/redeem"
	AdminGroupRoute   = "/admin"
	MetricsRoute      = "/metrics"
)
