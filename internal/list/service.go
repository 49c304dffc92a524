package list

import (
	"context"
	"errors"
	"time"

	"github.com/listyapp/listy/pkg/middleware"
)

// Common errors
var (
	ErrListNotFound    = errors.New("list not found")
	ErrTitleRequired   = errors.New("list title is required")
	ErrNotFamilyMember = errors.New("user is not a member of this family")
	ErrNotListOwner    = errors.New("only the list owner may delete the list")
)

// MembershipChecker answers whether a user belongs to a family. Implemented
// by the family service; list creation re-validates membership server-side
// instead of trusting the caller's context.
type MembershipChecker interface {
	IsMember(ctx context.Context, familyID, userID string) (bool, error)
}

// Service owns the list lifecycle, including cascade-aware deletion.
type Service struct {
	repo    *Repository
	members MembershipChecker
}

// NewService creates a new list service
func NewService(repo *Repository, members MembershipChecker) *Service {
	return &Service{repo: repo, members: members}
}

// Create creates a list owned by the caller. The owner must be a member of
// the family at creation time; ownership and family are immutable afterwards.
func (s *Service) Create(ctx context.Context, title, familyID string, owner middleware.Identity) (*List, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	isMember, err := s.members.IsMember(ctx, familyID, owner.UserID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotFamilyMember
	}

	l := &List{
		Title:     title,
		OwnerID:   owner.UserID,
		OwnerName: owner.Name,
		FamilyID:  familyID,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id

	return l, nil
}

// Delete removes a list and cascades to its items. Items go first, so an
// interrupted cascade leaves the list visible and the whole operation can be
// retried; deleting already-deleted items or an already-deleted list is a
// no-op.
func (s *Service) Delete(ctx context.Context, listID, actorID string) error {
	l, err := s.repo.Get(ctx, listID)
	if err != nil {
		return err
	}
	if l == nil {
		return nil
	}

	if l.OwnerID != actorID {
		return ErrNotListOwner
	}

	if err := s.repo.PurgeItems(ctx, listID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, listID)
}

// ListFamily returns a snapshot of the family's lists as of call time.
// Ordering is unspecified; callers must not depend on it.
func (s *Service) ListFamily(ctx context.Context, familyID, viewerID string) ([]*List, error) {
	isMember, err := s.members.IsMember(ctx, familyID, viewerID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotFamilyMember
	}

	return s.repo.ListByFamily(ctx, familyID)
}

// Get retrieves a list by id
func (s *Service) Get(ctx context.Context, id string) (*List, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrListNotFound
	}
	return l, nil
}
