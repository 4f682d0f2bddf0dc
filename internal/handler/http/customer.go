package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront-insights/internal/service"
	"github.com/utafrali/storefront-insights/pkg/httputil"
)

// CustomerHandler handles HTTP requests for the customer read endpoints.
type CustomerHandler struct {
	service *service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer HTTP handler.
func NewCustomerHandler(svc *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{service: svc, logger: logger}
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, customers)
}

// GetCustomer handles GET /api/v1/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, customer)
}
