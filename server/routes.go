package server

import "net/http"

// API routes
const (
	RouteSignup   = "/api/auth/signup"
	RouteLogin    = "/api/auth/login"
	RouteRefresh  = "/api/auth/refresh"
	RouteLogout   = "/api/auth/logout"
	RouteWeek     = "/api/sleep/week"
	RouteWeeks    = "/api/sleep/weeks"
	RouteSettings = "/api/settings"
)

func (s *Server) initRoutes() {
	api := s.APIMiddleware()

	// Session lifecycle
	s.RegisterRouteFunc(RouteSignup, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodPost: s.SignupHandler(),
	}), api...))
	s.RegisterRouteFunc(RouteLogin, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodPost: s.LoginHandler(),
	}), api...))
	s.RegisterRouteFunc(RouteRefresh, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodPost: s.RefreshHandler(),
	}), api...))
	s.RegisterRouteFunc(RouteLogout, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodPost: s.LogoutHandler(),
	}), api...))

	// Sleep diary (bearer-protected)
	s.RegisterRouteFunc(RouteWeek, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodGet:  s.RequireAuth(s.GetWeekHandler()),
		http.MethodPost: s.RequireAuth(s.SaveWeekHandler()),
	}), api...))
	s.RegisterRouteFunc(RouteWeeks, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodGet: s.RequireAuth(s.ListWeeksHandler()),
	}), api...))

	// Settings (bearer-protected)
	s.RegisterRouteFunc(RouteSettings, ChainMiddleware(s.Methods(map[string]http.HandlerFunc{
		http.MethodGet: s.RequireAuth(s.GetSettingsHandler()),
		http.MethodPut: s.RequireAuth(s.UpdateSettingsHandler()),
	}), api...))
}
