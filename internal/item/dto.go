package item

import "github.com/listyapp/listy/internal/visibility"

// AddItemRequest represents the request to add an item to a list
type AddItemRequest struct {
	ListID string `json:"list_id" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Link   string `json:"link,omitempty"`
	Price  string `json:"price,omitempty"`
}

// ItemResponse is an item as rendered for one specific viewer. The stored
// record always carries the claim fields; redaction happens here, at the
// application boundary, because the gateway returns full records regardless
// of who is asking.
type ItemResponse struct {
	ID            string              `json:"id"`
	ListID        string              `json:"listId"`
	Name          string              `json:"name"`
	Link          string              `json:"link,omitempty"`
	Price         string              `json:"price,omitempty"`
	IsBought      bool                `json:"isBought"`
	BoughtBy      *string             `json:"boughtBy"`
	BoughtByName  *string             `json:"boughtByName"`
	CreatedBy     string              `json:"createdBy"`
	CreatedByName string              `json:"createdByName"`
	Permissions   visibility.Decision `json:"permissions"`
}

// ToResponse projects the item for a viewer, hiding the claim sub-state from
// the item's creator so the surprise survives.
func (i *Item) ToResponse(viewerID, listOwnerID string) *ItemResponse {
	decision := visibility.Project(viewerID, listOwnerID, i.CreatedBy)

	resp := &ItemResponse{
		ID:            i.ID,
		ListID:        i.ListID,
		Name:          i.Name,
		Link:          i.Link,
		Price:         i.Price,
		CreatedBy:     i.CreatedBy,
		CreatedByName: i.CreatedByName,
		Permissions:   decision,
	}

	if decision.ShowClaimDetails {
		resp.IsBought = i.IsBought
		resp.BoughtBy = i.BoughtBy
		resp.BoughtByName = i.BoughtByName
	}

	return resp
}
