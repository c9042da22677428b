package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
	SecurityAdmin                       // Access token carrying the admin role
)

// Route names used by the HTTP router
const (
	RouteHealth           = "health"
	RouteListCrew         = "crew.list"
	RouteGetCrew          = "crew.get"
	RouteGetCrewByUser    = "crew.getByUser"
	RouteUpdateCrewStatus = "crew.updateStatus"
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	RouteHealth: SecurityPublic,

	RouteListCrew:         SecurityAccess,
	RouteGetCrew:          SecurityAccess,
	RouteGetCrewByUser:    SecurityAccess,
	RouteUpdateCrewStatus: SecurityAdmin,
}

// GetSecurityLevel returns the level for a route. Unknown routes require an access token.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
