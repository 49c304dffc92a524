package list

import "time"

// List is a named collection of items, owned by exactly one family member.
// OwnerID and FamilyID are immutable after creation.
type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	OwnerID   string    `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	FamilyID  string    `json:"familyId"`
	CreatedAt time.Time `json:"createdAt"`
}
