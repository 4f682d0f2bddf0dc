package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront-insights/internal/service"
	"github.com/utafrali/storefront-insights/pkg/httputil"
)

// ReportHandler handles HTTP requests for the dashboard report endpoints.
type ReportHandler struct {
	service *service.ReportService
	logger  *slog.Logger
}

// NewReportHandler creates a new report HTTP handler.
func NewReportHandler(svc *service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{service: svc, logger: logger}
}

// Overview handles GET /api/v1/dashboard/overview
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Overview(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteDataStamped(w, snapshot)
}

// Analytics handles GET /api/v1/dashboard/analytics
func (h *ReportHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Analytics(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, report)
}

// TopProducts handles GET /api/v1/dashboard/top-products
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.TopProducts(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, stats)
}

// OrderStatus handles GET /api/v1/dashboard/order-status
func (h *ReportHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.OrderStatus(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, report)
}

// RatingDashboard handles GET /api/v1/ratings
//
// The rating dashboard body is written bare, without the success envelope.
// Its consumer predates the envelope and reads the report fields at the top
// level.
func (h *ReportHandler) RatingDashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.RatingDashboard(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// RatingStats handles GET /api/v1/ratings/stats
func (h *ReportHandler) RatingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.RatingStats(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, stats)
}

// ProductReviews handles GET /api/v1/ratings/products/{productID}
func (h *ReportHandler) ProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	report, err := h.service.ProductReviews(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, report)
}
