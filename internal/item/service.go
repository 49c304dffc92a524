package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/listyapp/listy/internal/list"
	"github.com/listyapp/listy/internal/metrics"
	"github.com/listyapp/listy/pkg/middleware"
)

// Common errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrNameRequired = errors.New("item name is required")

	// ErrNotPermitted is the defensive rejection for callers the projector
	// should already have stopped: the item's creator (or the owning list's
	// owner) invoking a claim transition, or a non-creator deleting.
	ErrNotPermitted = errors.New("not permitted")

	// ErrClaimRace reports that the item was no longer unclaimed when the
	// claim was attempted: another participant got there between the
	// caller's read and this write.
	ErrClaimRace = errors.New("item was already claimed")
)

// ClaimConflictError reports a release attempt by someone other than the
// current claimant. The claimant's name is included so the caller can explain
// the refusal.
type ClaimConflictError struct {
	ClaimantName string
}

func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("item was bought by %s and only they can unmark it", e.ClaimantName)
}

// ListDirectory resolves the list an item belongs to. Implemented by the
// list service.
type ListDirectory interface {
	Get(ctx context.Context, listID string) (*list.List, error)
}

// Service owns the item lifecycle and the purchase-claim state machine
type Service struct {
	repo  *Repository
	lists ListDirectory
}

// NewService creates a new item service
func NewService(repo *Repository, lists ListDirectory) *Service {
	return &Service{repo: repo, lists: lists}
}

// Add creates an item in the Unclaimed state. The creator identity is fixed
// for the item's lifetime.
func (s *Service) Add(ctx context.Context, listID, name, link, price string, creator middleware.Identity) (*Item, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		return nil, err
	}

	i := &Item{
		ListID:        listID,
		Name:          name,
		Link:          link,
		Price:         price,
		IsBought:      false,
		BoughtBy:      nil,
		BoughtByName:  nil,
		CreatedBy:     creator.UserID,
		CreatedByName: creator.Name,
	}

	id, err := s.repo.Create(ctx, i)
	if err != nil {
		return nil, err
	}
	i.ID = id

	return i, nil
}

// Claim transitions Unclaimed -> Claimed(actor). The item's creator and the
// owning list's owner are both requesters of the gift and may never claim it,
// even when called directly past the projector. A claim against an item that
// is no longer unclaimed reports ErrClaimRace; the same actor re-sending
// their own claim is a safe retry.
//
// The unclaimed check is read-at-service-time: two racing claimants can still
// interleave between this read and the write, in which case the later write
// wins. The gateway offers no compare-and-swap; the residual window is an
// accepted trade-off.
func (s *Service) Claim(ctx context.Context, itemID string, actor middleware.Identity) (*Item, error) {
	i, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrItemNotFound
	}

	l, err := s.lists.Get(ctx, i.ListID)
	if err != nil {
		return nil, err
	}

	if actor.UserID == i.CreatedBy || actor.UserID == l.OwnerID {
		metrics.ObserveClaim("claim", "denied")
		return nil, ErrNotPermitted
	}

	if i.IsBought {
		if i.BoughtBy != nil && *i.BoughtBy == actor.UserID {
			return i, nil
		}
		metrics.ObserveClaim("claim", "race")
		return nil, ErrClaimRace
	}

	if err := s.repo.SetClaim(ctx, itemID, true, &actor.UserID, &actor.Name); err != nil {
		return nil, err
	}

	metrics.ObserveClaim("claim", "ok")
	i.IsBought = true
	i.BoughtBy = &actor.UserID
	i.BoughtByName = &actor.Name
	return i, nil
}

// Release transitions Claimed(by) -> Unclaimed, permitted only when the actor
// is the current claimant. The item's creator and the owning list's owner are
// rejected outright, before the claim state is even consulted: a conflict
// naming the claimant, or the claimed/unclaimed distinction itself, would
// reveal to them exactly what the secrecy rule hides. Any other non-claimant
// gets a ClaimConflictError naming the claimant and the state does not
// change. Both claimant fields clear together with the flag. Releasing an
// already-unclaimed item is a safe retry.
func (s *Service) Release(ctx context.Context, itemID string, actor middleware.Identity) (*Item, error) {
	i, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrItemNotFound
	}

	l, err := s.lists.Get(ctx, i.ListID)
	if err != nil {
		return nil, err
	}

	if actor.UserID == i.CreatedBy || actor.UserID == l.OwnerID {
		metrics.ObserveClaim("release", "denied")
		return nil, ErrNotPermitted
	}

	if !i.IsBought {
		return i, nil
	}

	if i.BoughtBy == nil || *i.BoughtBy != actor.UserID {
		metrics.ObserveClaim("release", "conflict")
		return nil, &ClaimConflictError{ClaimantName: i.Claimant()}
	}

	if err := s.repo.SetClaim(ctx, itemID, false, nil, nil); err != nil {
		return nil, err
	}

	metrics.ObserveClaim("release", "ok")
	i.IsBought = false
	i.BoughtBy = nil
	i.BoughtByName = nil
	return i, nil
}

// Delete removes an item. Only the item's creator may delete it; creation
// ownership, not list ownership, is the authorizing relation. Deletion is
// unconditional with respect to claim state: a live claim is silently
// discarded. An absent item returns (nil, nil) so retried deletes are no-ops.
func (s *Service) Delete(ctx context.Context, itemID, actorID string) (*Item, error) {
	i, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}

	if i.CreatedBy != actorID {
		return nil, ErrNotPermitted
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	return i, nil
}

// List returns the list's items and the containing list, which the caller
// needs for per-viewer projection.
func (s *Service) List(ctx context.Context, listID string) ([]*Item, *list.List, error) {
	l, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.repo.ListByList(ctx, listID)
	if err != nil {
		return nil, nil, err
	}

	return items, l, nil
}
