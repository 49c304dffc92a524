package list

// CreateListRequest represents the request to create a new list
type CreateListRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	FamilyID string `json:"family_id" validate:"required"`
}
