// Package visibility decides, for a given viewer, which item fields are
// meaningful to show and which mutations are permitted. It is the locus of
// the secrecy rule: an item's creator must never observe or control the
// purchase claim on their own requested gift.
//
// Projection is a pure function of the viewer and the entities. It holds no
// state and must be recomputed per request, never cached across viewers.
package visibility

// Decision is the projector's verdict for one (viewer, list, item) triple.
type Decision struct {
	CanAddItem       bool `json:"canAddItem"`
	CanDeleteItem    bool `json:"canDeleteItem"`
	CanToggleClaim   bool `json:"canToggleClaim"`
	ShowClaimDetails bool `json:"showClaimDetails"`
}

// Project computes the decision for a viewer against a list's owner and an
// item's creator. ShowClaimDetails is the secrecy rule: only non-creators may
// see who claimed the item, even though the stored record always carries the
// claim fields.
func Project(viewerID, listOwnerID, itemCreatorID string) Decision {
	isCreator := viewerID == itemCreatorID

	return Decision{
		CanAddItem:       viewerID == listOwnerID,
		CanDeleteItem:    isCreator,
		CanToggleClaim:   !isCreator,
		ShowClaimDetails: !isCreator,
	}
}
