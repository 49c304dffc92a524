package list

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

// Handler handles HTTP requests for list operations
type Handler struct {
	service *Service
}

// NewHandler creates a new list handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for list endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListFamily)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /lists
// @Summary      Create a list
// @Description  Create a list owned by the caller; responds with the refreshed family list snapshot
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        request body CreateListRequest true "List creation request"
// @Success      201 {object} response.APIResponse{data=[]List}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /lists [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	var req CreateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			_, err := h.service.Create(ctx, req.Title, req.FamilyID, identity)
			return err
		},
		func(ctx context.Context) ([]*List, error) {
			return h.service.ListFamily(ctx, req.FamilyID, identity.UserID)
		},
	)
	if err != nil {
		h.writeError(w, err, "Failed to create list")
		return
	}

	response.JSON(w, http.StatusCreated, fresh)
}

// ListFamily handles GET /lists?family_id=
// @Summary      List family lists
// @Description  Snapshot of the family's lists as of call time; order is unspecified
// @Tags         lists
// @Produce      json
// @Param        family_id query string true "Family ID"
// @Success      200 {object} response.APIResponse{data=[]List}
// @Failure      403 {object} response.APIResponse
// @Router       /lists [get]
func (h *Handler) ListFamily(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	familyID := r.URL.Query().Get("family_id")
	if familyID == "" {
		response.BadRequest(w, "family_id is required")
		return
	}

	lists, err := h.service.ListFamily(r.Context(), familyID, identity.UserID)
	if err != nil {
		h.writeError(w, err, "Failed to list lists")
		return
	}

	response.JSON(w, http.StatusOK, lists)
}

// GetByID handles GET /lists/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err, "Failed to get list")
		return
	}

	response.JSON(w, http.StatusOK, l)
}

// Delete handles DELETE /lists/{id}
// @Summary      Delete a list
// @Description  Owner-only; cascades to every item on the list, then responds with the refreshed snapshot
// @Tags         lists
// @Produce      json
// @Param        id path string true "List ID"
// @Success      200 {object} response.APIResponse{data=[]List}
// @Failure      403 {object} response.APIResponse
// @Router       /lists/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	listID := chi.URLParam(r, "id")

	// The refreshed snapshot needs the family id, which is gone once the
	// list document is deleted; resolve it first. An already-deleted list
	// keeps the delete idempotent but has no snapshot to return.
	l, err := h.service.Get(r.Context(), listID)
	if errors.Is(err, ErrListNotFound) {
		response.JSON(w, http.StatusOK, []*List{})
		return
	}
	if err != nil {
		response.InternalError(w, "Failed to get list")
		return
	}

	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			return h.service.Delete(ctx, listID, identity.UserID)
		},
		func(ctx context.Context) ([]*List, error) {
			return h.service.ListFamily(ctx, l.FamilyID, identity.UserID)
		},
	)
	if err != nil {
		h.writeError(w, err, "Failed to delete list")
		return
	}

	response.JSON(w, http.StatusOK, fresh)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrListNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrTitleRequired):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrNotFamilyMember), errors.Is(err, ErrNotListOwner):
		response.Forbidden(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
