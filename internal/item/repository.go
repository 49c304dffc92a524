package item

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/listyapp/listy/internal/gateway"
)

// Repository handles item data persistence
type Repository struct {
	gw gateway.Gateway
}

// NewRepository creates a new item repository
func NewRepository(gw gateway.Gateway) *Repository {
	return &Repository{gw: gw}
}

// Create stores a new item and returns its assigned id.
func (r *Repository) Create(ctx context.Context, i *Item) (string, error) {
	doc := gateway.Document{
		"listId":        i.ListID,
		"name":          i.Name,
		"link":          i.Link,
		"price":         i.Price,
		"isBought":      i.IsBought,
		"boughtBy":      i.BoughtBy,
		"boughtByName":  i.BoughtByName,
		"createdBy":     i.CreatedBy,
		"createdByName": i.CreatedByName,
	}

	id, err := r.gw.Create(ctx, gateway.Items, "", doc)
	if err != nil {
		return "", fmt.Errorf("failed to create item: %w", err)
	}

	return id, nil
}

// Get retrieves an item by id. Returns nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*Item, error) {
	doc, err := r.gw.Get(ctx, gateway.Items, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	return docToItem(doc)
}

// ListByList returns an unordered snapshot of the list's items.
func (r *Repository) ListByList(ctx context.Context, listID string) ([]*Item, error) {
	docs, err := r.gw.QueryEqual(ctx, gateway.Items, "listId", listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	items := make([]*Item, 0, len(docs))
	for _, doc := range docs {
		i, err := docToItem(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	return items, nil
}

// SetClaim writes the claim sub-state. All three fields are written together
// so the stored record can never hold a half-claimed item.
func (r *Repository) SetClaim(ctx context.Context, id string, isBought bool, by, byName *string) error {
	err := r.gw.UpdatePartial(ctx, gateway.Items, id, gateway.Document{
		"isBought":     isBought,
		"boughtBy":     by,
		"boughtByName": byName,
	})
	if err != nil {
		return fmt.Errorf("failed to update item claim: %w", err)
	}

	return nil
}

// Delete removes an item document. Deleting an absent item is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.gw.Delete(ctx, gateway.Items, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

func docToItem(doc gateway.Document) (*Item, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item document: %w", err)
	}

	i := &Item{}
	if err := json.Unmarshal(data, i); err != nil {
		return nil, fmt.Errorf("failed to decode item document: %w", err)
	}

	return i, nil
}
