package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront-insights/internal/service"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
	"github.com/utafrali/storefront-insights/pkg/httputil"
	"github.com/utafrali/storefront-insights/pkg/validator"
)

// OrderHandler handles HTTP requests for the order read endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

// ListOrdersRequest holds the parsed query parameters for listing orders.
type ListOrdersRequest struct {
	PaymentStatus  string `validate:"omitempty,oneof=pending paid failed refunded"`
	ShippingStatus string `validate:"omitempty,oneof=pending shipped delivered returned"`
	Page           int    `validate:"gte=0"`
	PerPage        int    `validate:"gte=0"`
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := ListOrdersRequest{
		PaymentStatus:  q.Get("payment_status"),
		ShippingStatus: q.Get("shipping_status"),
	}

	var err error
	if v := q.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("page must be an integer"), h.logger)
			return
		}
	}
	if v := q.Get("per_page"); v != "" {
		if req.PerPage, err = strconv.Atoi(v); err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("per_page must be an integer"), h.logger)
			return
		}
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput(err.Error()), h.logger)
		return
	}

	page, err := h.service.ListOrders(r.Context(), service.ListOrdersInput{
		PaymentStatus:  req.PaymentStatus,
		ShippingStatus: req.ShippingStatus,
		Page:           req.Page,
		PerPage:        req.PerPage,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, page)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, order)
}
