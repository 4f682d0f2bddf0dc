package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront-insights/internal/service"
	"github.com/utafrali/storefront-insights/pkg/health"
	"github.com/utafrali/storefront-insights/pkg/middleware"
)

const serviceName = "storefront-insights"

// NewRouter creates a chi router with all reporting routes registered.
func NewRouter(
	reportService *service.ReportService,
	orderService *service.OrderService,
	customerService *service.CustomerService,
	profileService *service.ProfileService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	reportHandler := NewReportHandler(reportService, logger)
	orderHandler := NewOrderHandler(orderService, logger)
	customerHandler := NewCustomerHandler(customerService, logger)
	profileHandler := NewProfileHandler(profileService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", reportHandler.Overview)
			r.Get("/analytics", reportHandler.Analytics)
			r.Get("/top-products", reportHandler.TopProducts)
			r.Get("/order-status", reportHandler.OrderStatus)
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", reportHandler.RatingDashboard)
			r.Get("/stats", reportHandler.RatingStats)
			r.Get("/products/{productID}", reportHandler.ProductReviews)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.ListOrders)
			r.Get("/{id}", orderHandler.GetOrder)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.ListCustomers)
			r.Get("/{id}", customerHandler.GetCustomer)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", profileHandler.ListProfiles)
			r.Get("/{id}", profileHandler.GetProfile)
		})
	})

	return r
}
