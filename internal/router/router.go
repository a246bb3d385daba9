package router // route registration for the reservation API

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/appayon/table-reservation/internal/handler"
	"github.com/appayon/table-reservation/internal/middleware"
)

// RegisterRoutes registers routes that carry no authentication: the
// health check and the Prometheus exposition endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterStatic serves the booking form and the admin dashboard page.
// The assets themselves live outside the Go module; the dashboard gates
// itself through /api/auth/login.
func RegisterStatic(e *echo.Echo, publicDir string) {
	e.Static("/", publicDir)
	e.File("/admin", filepath.Join(publicDir, "admin.html"))
}

// RegisterAuth registers the admin login endpoint and the protected
// identity echo endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/api/auth/login", a.Login)

	g := e.Group("/api/auth", middleware.JWTAuth(a.JWTSecret), middleware.RequireRole(handler.RoleAdmin))
	g.GET("/me", a.Me)
}

// RegisterBookings registers the public intake endpoint (rate limited)
// and the ADMIN-scoped listing, summary, transition and notification
// endpoints.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	e.POST("/api/bookings", h.Create, limiter)

	g := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleAdmin),
	)
	g.GET("/bookings", h.List)
	g.GET("/bookings/summary", h.Summary)
	g.PATCH("/bookings/:id", h.UpdateStatus)
	g.GET("/bookings/:id/whatsapp", h.WhatsApp)
}
