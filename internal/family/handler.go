package family

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listyapp/listy/internal/syncer"
	"github.com/listyapp/listy/pkg/middleware"
	"github.com/listyapp/listy/pkg/response"
)

// ProfileBinder binds a user profile to a family after a successful create or
// join. Implemented by the user service.
type ProfileBinder interface {
	BindFamily(ctx context.Context, userID, familyID string) error
}

// Handler handles HTTP requests for family operations
type Handler struct {
	service *Service
	binder  ProfileBinder
}

// NewHandler creates a new family handler
func NewHandler(service *Service, binder ProfileBinder) *Handler {
	return &Handler{service: service, binder: binder}
}

// Routes returns the router for family endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/join", h.Join)

	return r
}

// Create handles POST /families
// @Summary      Create a family
// @Description  Create a family with the caller as founding member and bind the caller's profile to it
// @Tags         families
// @Accept       json
// @Produce      json
// @Param        request body CreateFamilyRequest true "Family creation request"
// @Success      201 {object} response.APIResponse{data=Family}
// @Failure      400 {object} response.APIResponse
// @Router       /families [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	var req CreateFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, identity)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create family")
		return
	}

	// Bind the founder's profile. Not atomic with creation: if the bind
	// fails, the family already exists and the founder retries the bind,
	// which is idempotent.
	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			return h.binder.BindFamily(ctx, identity.UserID, created.ID)
		},
		func(ctx context.Context) (*Family, error) {
			return h.service.Get(ctx, created.ID)
		},
	)
	if err != nil {
		response.InternalError(w, "Family created but binding failed, retry joining with id "+created.ID)
		return
	}

	response.JSON(w, http.StatusCreated, fresh)
}

// GetByID handles GET /families/{id}
// @Summary      Get family by ID
// @Tags         families
// @Produce      json
// @Param        id path string true "Family ID"
// @Success      200 {object} response.APIResponse{data=Family}
// @Failure      404 {object} response.APIResponse
// @Router       /families/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	f, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrFamilyNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get family")
		return
	}

	response.JSON(w, http.StatusOK, f)
}

// Join handles POST /families/{id}/join
// @Summary      Join a family
// @Description  Add the caller to the family's member set and bind their profile; joining twice is a no-op
// @Tags         families
// @Produce      json
// @Param        id path string true "Family ID"
// @Success      200 {object} response.APIResponse{data=JoinResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /families/{id}/join [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	familyID := chi.URLParam(r, "id")

	joined, err := h.service.Join(r.Context(), familyID, identity.UserID)
	if err != nil {
		response.InternalError(w, "Failed to join family")
		return
	}
	if !joined {
		response.NotFound(w, "family not found")
		return
	}

	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			return h.binder.BindFamily(ctx, identity.UserID, familyID)
		},
		func(ctx context.Context) (*Family, error) {
			return h.service.Get(ctx, familyID)
		},
	)
	if err != nil {
		response.InternalError(w, "Joined family but binding failed, retry join")
		return
	}

	response.JSON(w, http.StatusOK, &JoinResponse{Joined: true, Family: fresh})
}
