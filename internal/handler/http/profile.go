package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront-insights/internal/service"
	"github.com/utafrali/storefront-insights/pkg/httputil"
)

// ProfileHandler handles HTTP requests for the admin profile read endpoints.
type ProfileHandler struct {
	service *service.ProfileService
	logger  *slog.Logger
}

// NewProfileHandler creates a new profile HTTP handler.
func NewProfileHandler(svc *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{service: svc, logger: logger}
}

// ListProfiles handles GET /api/v1/profile
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, profiles)
}

// GetProfile handles GET /api/v1/profile/{id}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, profile)
}
