package access

import "github.com/casaluna/hotel-pms/internal/core/domain"

// Route is a protected area of the dashboard.
type Route string

const (
	RouteDashboard    Route = "dashboard"
	RouteProfile      Route = "profile"
	RouteReservations Route = "reservations"
	RouteRooms        Route = "rooms"
	RoutePricing      Route = "pricing"
	RouteStock        Route = "stock"
	RouteExpenses     Route = "expenses"
	RouteStaff        Route = "staff"
	RouteHotelConfig  Route = "hotel-configuration"
)

// allowList is the single source of truth for which roles may open a route.
var allowList = map[Route][]domain.Role{
	RouteDashboard:    {domain.RoleAdmin, domain.RoleReception, domain.RoleHousekeeping},
	RouteProfile:      {domain.RoleAdmin, domain.RoleReception, domain.RoleHousekeeping},
	RouteReservations: {domain.RoleAdmin, domain.RoleReception},
	RouteRooms:        {domain.RoleAdmin, domain.RoleReception, domain.RoleHousekeeping},
	RoutePricing:      {domain.RoleAdmin, domain.RoleReception},
	RouteStock:        {domain.RoleAdmin, domain.RoleHousekeeping},
	RouteExpenses:     {domain.RoleAdmin},
	RouteStaff:        {domain.RoleAdmin},
	RouteHotelConfig:  {domain.RoleAdmin},
}

// Routes returns every protected route in menu order.
func Routes() []Route {
	return []Route{
		RouteDashboard,
		RouteReservations,
		RouteRooms,
		RoutePricing,
		RouteStock,
		RouteExpenses,
		RouteStaff,
		RouteHotelConfig,
		RouteProfile,
	}
}

// AllowedRoles returns the roles that may open route. Unknown routes allow
// no one.
func AllowedRoles(route Route) []domain.Role {
	return allowList[route]
}

// Permits reports whether role may open route.
func Permits(role domain.Role, route Route) bool {
	for _, r := range allowList[route] {
		if r == role {
			return true
		}
	}
	return false
}

// Menu returns the routes visible to role, in menu order.
func Menu(role domain.Role) []Route {
	var out []Route
	for _, rt := range Routes() {
		if Permits(role, rt) {
			out = append(out, rt)
		}
	}
	return out
}
