package family

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/listyapp/listy/internal/gateway"
)

// Repository handles family data persistence
type Repository struct {
	gw gateway.Gateway
}

// NewRepository creates a new family repository
func NewRepository(gw gateway.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Create stores a new family and returns its assigned id.
func (r *Repository) Create(ctx context.Context, f *Family) (string, error) {
	doc := gateway.Document{
		"name":    f.Name,
		"members": f.Members,
	}

	id, err := r.gw.Create(ctx, gateway.Families, "", doc)
	if err != nil {
		return "", fmt.Errorf("failed to create family: %w", err)
	}

	return id, nil
}

// Get retrieves a family by id. Returns nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*Family, error) {
	doc, err := r.gw.Get(ctx, gateway.Families, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	return docToFamily(doc)
}

// SetMembers replaces the member set.
func (r *Repository) SetMembers(ctx context.Context, familyID string, members []string) error {
	err := r.gw.UpdatePartial(ctx, gateway.Families, familyID, gateway.Document{
		"members": members,
	})
	if err != nil {
		return fmt.Errorf("failed to update family members: %w", err)
	}

	return nil
}

func docToFamily(doc gateway.Document) (*Family, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode family document: %w", err)
	}

	f := &Family{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to decode family document: %w", err)
	}

	return f, nil
}
