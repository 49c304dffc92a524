package family

// Family is a named group of users who share visibility into each other's
// lists. Members has set semantics: re-adding an existing member is a no-op.
// The creator is always the first member, so Members is never empty.
type Family struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// HasMember reports whether userID is in the member set.
func (f *Family) HasMember(userID string) bool {
	for _, m := range f.Members {
		if m == userID {
			return true
		}
	}
	return false
}
