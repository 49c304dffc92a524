package user

// User is a member profile, keyed by the identity provider's user id.
// FamilyID is null until the user creates or joins a family; normal flow
// never clears or changes it afterwards.
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhotoURL string  `json:"photoURL,omitempty"`
	FamilyID *string `json:"familyId"`
}
