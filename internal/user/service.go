package user

import (
	"context"
	"errors"

	"github.com/listyapp/listy/pkg/middleware"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Service handles user profile business logic
type Service struct {
	repo *Repository
}

// NewService creates a new user service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// EnsureProfile creates the profile for the given identity if it does not
// exist yet and returns it. Called lazily on the first authenticated request
// of a session; repeat calls are no-ops.
func (s *Service) EnsureProfile(ctx context.Context, identity middleware.Identity) (*User, error) {
	existing, err := s.repo.Get(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u := &User{
		ID:       identity.UserID,
		Name:     identity.Name,
		Email:    identity.Email,
		PhotoURL: identity.PhotoURL,
		FamilyID: nil,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Get retrieves a profile by user id
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// BindFamily sets the user's familyId. Idempotent: re-binding the same value
// is a no-op. Binding a different value is permitted here; callers uphold the
// already-bound guard, since normal flow never re-binds.
func (s *Service) BindFamily(ctx context.Context, userID, familyID string) error {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	if u.FamilyID != nil && *u.FamilyID == familyID {
		return nil
	}

	return s.repo.SetFamily(ctx, userID, familyID)
}
