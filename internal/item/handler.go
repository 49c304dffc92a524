package item

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/listyapp/listy/internal/list"
	"github.com/listyapp/listy/internal/syncer"
	"github.com/listyapp/listy/pkg/middleware"
	"github.com/listyapp/listy/pkg/response"
)

// Handler handles HTTP requests for item operations
type Handler struct {
	service *Service
}

// NewHandler creates a new item handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for item endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Add)
	r.Get("/", h.ListByList)
	r.Post("/{id}/claim", h.Claim)
	r.Delete("/{id}/claim", h.Release)
	r.Delete("/{id}", h.Delete)

	return r
}

// Add handles POST /items
// @Summary      Add an item
// @Description  Add a wish to a list; responds with the refreshed, viewer-projected item snapshot
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body AddItemRequest true "Item to add"
// @Success      201 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /items [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			_, err := h.service.Add(ctx, req.ListID, req.Name, req.Link, req.Price, identity)
			return err
		},
		h.projector(req.ListID, identity.UserID),
	)
	if err != nil {
		h.writeError(w, err, "Failed to add item")
		return
	}

	response.JSON(w, http.StatusCreated, fresh)
}

// ListByList handles GET /items?list_id=
// @Summary      List items
// @Description  Snapshot of a list's items projected for the caller; claim details are hidden on the caller's own wishes
// @Tags         items
// @Produce      json
// @Param        list_id query string true "List ID"
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /items [get]
func (h *Handler) ListByList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	listID := r.URL.Query().Get("list_id")
	if listID == "" {
		response.BadRequest(w, "list_id is required")
		return
	}

	projected, err := h.projector(listID, identity.UserID)(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list items")
		return
	}

	response.JSON(w, http.StatusOK, projected)
}

// Claim handles POST /items/{id}/claim
// @Summary      Claim an item
// @Description  Mark an item as being purchased by the caller; rejected for the item's requester, 409 when someone was faster
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /items/{id}/claim [post]
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Claim)
}

// Release handles DELETE /items/{id}/claim
// @Summary      Release a claim
// @Description  Unmark an item; only the current claimant may do this. The item's requester is rejected outright, any other caller gets a conflict naming the claimant
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /items/{id}/claim [delete]
func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Release)
}

// transition runs a claim-state mutation followed by the mandatory refetch of
// the item's list.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string, middleware.Identity) (*Item, error)) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	itemID := chi.URLParam(r, "id")

	var mutated *Item
	fresh, err := syncer.Do(r.Context(),
		func(ctx context.Context) error {
			var err error
			mutated, err = op(ctx, itemID, identity)
			return err
		},
		func(ctx context.Context) ([]*ItemResponse, error) {
			return h.projector(mutated.ListID, identity.UserID)(ctx)
		},
	)
	if err != nil {
		h.writeError(w, err, "Failed to update claim")
		return
	}

	response.JSON(w, http.StatusOK, fresh)
}

// Delete handles DELETE /items/{id}
// @Summary      Delete an item
// @Description  Creator-only; discards any live claim without notification
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200 {object} response.APIResponse{data=[]ItemResponse}
// @Failure      403 {object} response.APIResponse
// @Router       /items/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Identity required")
		return
	}

	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		h.writeError(w, err, "Failed to delete item")
		return
	}
	if deleted == nil {
		// Already gone; nothing to refetch against.
		response.JSON(w, http.StatusOK, []*ItemResponse{})
		return
	}

	fresh, err := h.projector(deleted.ListID, identity.UserID)(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to refresh items")
		return
	}

	response.JSON(w, http.StatusOK, fresh)
}

// projector returns the refetch closure used after every item mutation: it
// re-reads the list's items and projects them for the viewer.
func (h *Handler) projector(listID, viewerID string) func(context.Context) ([]*ItemResponse, error) {
	return func(ctx context.Context) ([]*ItemResponse, error) {
		items, l, err := h.service.List(ctx, listID)
		if err != nil {
			return nil, err
		}

		projected := make([]*ItemResponse, len(items))
		for idx, i := range items {
			projected[idx] = i.ToResponse(viewerID, l.OwnerID)
		}

		return projected, nil
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var conflict *ClaimConflictError

	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, list.ErrListNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNameRequired):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrNotPermitted):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrClaimRace):
		response.Conflict(w, err.Error())
	case errors.As(err, &conflict):
		response.Conflict(w, conflict.Error())
	default:
		response.InternalError(w, fallback)
	}
}
