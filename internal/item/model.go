package item

// Item is a requested gift entry on a list. Its claim sub-state is the only
// contended field in the system: either Unclaimed (IsBought false, both
// claimant fields nil) or Claimed (IsBought true, both claimant fields set).
// The three fields always move together.
//
// CreatedBy is fixed at creation and never changes; it is the authorizing
// relation for deletion and the anchor of the secrecy rule.
type Item struct {
	ID            string  `json:"id"`
	ListID        string  `json:"listId"`
	Name          string  `json:"name"`
	Link          string  `json:"link,omitempty"`
	Price         string  `json:"price,omitempty"`
	IsBought      bool    `json:"isBought"`
	BoughtBy      *string `json:"boughtBy"`
	BoughtByName  *string `json:"boughtByName"`
	CreatedBy     string  `json:"createdBy"`
	CreatedByName string  `json:"createdByName"`
}

// Claimant returns the display name of the current claimant, or "" when
// unclaimed.
func (i *Item) Claimant() string {
	if i.BoughtByName == nil {
		return ""
	}
	return *i.BoughtByName
}
