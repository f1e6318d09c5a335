package bootstrap

import "github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"

// Route destino de navegación que decide el workflow.
type Route string

const (
	RouteHome             Route = "/"
	RouteCompleteProfile  Route = "/complete-profile"
	RouteOwnerDashboard   Route = "/owner/dashboard"
	RouteVetDashboard     Route = "/vet/dashboard"
	RouteShelterDashboard Route = "/shelter/dashboard"
	RouteLogin            Route = "/auth/login"
)

// RouteForRole dashboard de cada rol; cualquier otro valor va al de owner.
func RouteForRole(role entity.Role) Route {
	switch role {
	case entity.RoleVet:
		return RouteVetDashboard
	case entity.RoleShelter:
		return RouteShelterDashboard
	default:
		return RouteOwnerDashboard
	}
}

// RouteForOutcome destino tras un login.
func RouteForOutcome(out *entity.SessionOutcome) Route {
	switch {
	case out == nil || !out.IsAuthenticated:
		return RouteLogin
	case out.NeedsProfileSetup:
		return RouteCompleteProfile
	default:
		return RouteForRole(out.Role)
	}
}
