package family

// CreateFamilyRequest represents the request to create a new family
type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// JoinResponse reports the outcome of a join attempt. Joined is false when
// the family id did not resolve; that is a business condition, not a fault.
type JoinResponse struct {
	Joined bool    `json:"joined"`
	Family *Family `json:"family,omitempty"`
}
