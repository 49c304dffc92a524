package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listyapp/listy/pkg/middleware"
	"github.com/listyapp/listy/pkg/response"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.Me)

	return r
}

// Me handles GET /users/me
// @Summary      Get my profile
// @Description  Return the caller's profile, creating it on first session
// @Tags         users
// @Produce      json
// @Success      200 {object} response.APIResponse{data=User}
// @Failure      401 {object} response.APIResponse
// @Router       /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	profile, err := h.service.EnsureProfile(r.Context(), identity)
	if err != nil {
		response.InternalError(w, "Failed to load profile")
		return
	}

	response.JSON(w, http.StatusOK, profile)
}
