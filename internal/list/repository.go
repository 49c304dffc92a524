package list

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/listyapp/listy/internal/gateway"
)

// Repository handles list data persistence
type Repository struct {
	gw gateway.Gateway
}

// NewRepository creates a new list repository
func NewRepository(gw gateway.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Create stores a new list and returns its assigned id.
func (r *Repository) Create(ctx context.Context, l *List) (string, error) {
	doc := gateway.Document{
		"title":     l.Title,
		"ownerId":   l.OwnerID,
		"ownerName": l.OwnerName,
		"familyId":  l.FamilyID,
		"createdAt": l.CreatedAt,
	}

	id, err := r.gw.Create(ctx, gateway.Lists, "", doc)
	if err != nil {
		return "", fmt.Errorf("failed to create list: %w", err)
	}

	return id, nil
}

// Get retrieves a list by id. Returns nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*List, error) {
	doc, err := r.gw.Get(ctx, gateway.Lists, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	return docToList(doc)
}

// ListByFamily returns an unordered snapshot of the family's lists.
func (r *Repository) ListByFamily(ctx context.Context, familyID string) ([]*List, error) {
	docs, err := r.gw.QueryEqual(ctx, gateway.Lists, "familyId", familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}

	lists := make([]*List, 0, len(docs))
	for _, doc := range docs {
		l, err := docToList(doc)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}

	return lists, nil
}

// Delete removes a list document. Deleting an absent list is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.gw.Delete(ctx, gateway.Lists, id); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}

// PurgeItems deletes every item whose listId matches. Part of the registry's
// cascade; items removed by an earlier interrupted cascade are simply absent
// from the snapshot, so retries are safe.
func (r *Repository) PurgeItems(ctx context.Context, listID string) error {
	docs, err := r.gw.QueryEqual(ctx, gateway.Items, "listId", listID)
	if err != nil {
		return fmt.Errorf("failed to query list items: %w", err)
	}

	for _, doc := range docs {
		id, _ := doc["id"].(string)
		if err := r.gw.Delete(ctx, gateway.Items, id); err != nil {
			return fmt.Errorf("failed to delete list item: %w", err)
		}
	}

	return nil
}

func docToList(doc gateway.Document) (*List, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list document: %w", err)
	}

	l := &List{}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("failed to decode list document: %w", err)
	}

	return l, nil
}
