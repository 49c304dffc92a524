package family

import (
	"context"
	"errors"

	"github.com/listyapp/listy/pkg/middleware"
)

// Common errors
var (
	ErrFamilyNotFound = errors.New("family not found")
	ErrNameRequired   = errors.New("family name is required")
)

// Service owns the family membership lifecycle
type Service struct {
	repo *Repository
}

// NewService creates a new family service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a family with the founder as its only member. Binding the
// founder's profile to the new family is a separate step owned by the caller;
// an interruption between the two leaves a recoverable intermediate state,
// since the bind is idempotent and can be retried.
func (s *Service) Create(ctx context.Context, name string, founder middleware.Identity) (*Family, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	f := &Family{
		Name:    name,
		Members: []string{founder.UserID},
	}

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	f.ID = id

	return f, nil
}

// Join adds userID to the family's member set. A missing family is a reported
// business condition, not a fault: it returns (false, nil). Joining a family
// the user already belongs to reports success without writing.
func (s *Service) Join(ctx context.Context, familyID, userID string) (bool, error) {
	f, err := s.repo.Get(ctx, familyID)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}

	if f.HasMember(userID) {
		return true, nil
	}

	members := append(f.Members, userID)
	if err := s.repo.SetMembers(ctx, familyID, members); err != nil {
		return false, err
	}

	return true, nil
}

// Get retrieves a family by id
func (s *Service) Get(ctx context.Context, id string) (*Family, error) {
	f, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFamilyNotFound
	}
	return f, nil
}

// IsMember reports whether userID belongs to the family. An absent family
// simply reports false.
func (s *Service) IsMember(ctx context.Context, familyID, userID string) (bool, error) {
	f, err := s.repo.Get(ctx, familyID)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}
	return f.HasMember(userID), nil
}
