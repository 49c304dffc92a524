package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/listyapp/listy/internal/gateway"
)

// Repository handles user profile persistence
type Repository struct {
	gw gateway.Gateway
}

// NewRepository creates a new user repository
func NewRepository(gw gateway.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Create stores a new profile keyed by the identity provider's user id.
func (r *Repository) Create(ctx context.Context, u *User) error {
	doc := gateway.Document{
		"name":     u.Name,
		"email":    u.Email,
		"photoURL": u.PhotoURL,
		"familyId": u.FamilyID,
	}

	if _, err := r.gw.Create(ctx, gateway.Users, u.ID, doc); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Get retrieves a profile by user id. Returns nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*User, error) {
	doc, err := r.gw.Get(ctx, gateway.Users, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	return docToUser(doc)
}

// SetFamily sets the profile's familyId.
func (r *Repository) SetFamily(ctx context.Context, userID, familyID string) error {
	err := r.gw.UpdatePartial(ctx, gateway.Users, userID, gateway.Document{
		"familyId": familyID,
	})
	if err != nil {
		return fmt.Errorf("failed to set user family: %w", err)
	}

	return nil
}

func docToUser(doc gateway.Document) (*User, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user document: %w", err)
	}

	u := &User{}
	if err := json.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}

	return u, nil
}
