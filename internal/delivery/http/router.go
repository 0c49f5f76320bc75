package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"richmondtech/internal/delivery/http/controllers"
	"richmondtech/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// adminToken guards the admin surface; empty disables it.
func NewRouter(
	ask *controllers.AskController,
	health *controllers.HealthController,
	admin *controllers.AdminController,
	adminToken string,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(adminToken)

	mux.HandleFunc("POST /ask", ask.Ask)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("POST /admin/seed", requireAdmin(admin.Seed))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
