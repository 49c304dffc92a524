package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listyapp/listy/internal/family"
	"github.com/listyapp/listy/internal/gateway"
	"github.com/listyapp/listy/pkg/middleware"
)

var (
	owner    = middleware.Identity{UserID: "owner-uid", Name: "Alice"}
	stranger = middleware.Identity{UserID: "stranger-uid", Name: "Mallory"}
)

type testEnv struct {
	gw       *gateway.Memory
	svc      *Service
	familyID string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gw := gateway.NewMemory()
	familySvc := family.NewService(family.NewRepository(gw))
	svc := NewService(NewRepository(gw), familySvc)

	f, err := familySvc.Create(context.Background(), "Smiths", owner)
	require.NoError(t, err)

	return &testEnv{gw: gw, svc: svc, familyID: f.ID}
}

func TestCreateList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l, err := env.svc.Create(ctx, "Wishlist", env.familyID, owner)
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Wishlist", l.Title)
	assert.Equal(t, owner.UserID, l.OwnerID)
	assert.Equal(t, "Alice", l.OwnerName)
	assert.Equal(t, env.familyID, l.FamilyID)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestCreateListRequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), "", env.familyID, owner)
	require.ErrorIs(t, err, ErrTitleRequired)
}

func TestCreateListRequiresMembership(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), "Wishlist", env.familyID, stranger)
	require.ErrorIs(t, err, ErrNotFamilyMember)
}

func TestListFamilySnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, "Alice's Wishlist", env.familyID, owner)
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, "Stocking Stuffers", env.familyID, owner)
	require.NoError(t, err)

	lists, err := env.svc.ListFamily(ctx, env.familyID, owner.UserID)
	require.NoError(t, err)
	assert.Len(t, lists, 2)
}

func TestListFamilyRequiresMembership(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ListFamily(context.Background(), env.familyID, stranger.UserID)
	require.ErrorIs(t, err, ErrNotFamilyMember)
}

func TestDeleteListCascadesToItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l, err := env.svc.Create(ctx, "Wishlist", env.familyID, owner)
	require.NoError(t, err)

	for _, name := range []string{"Sweater", "Socks", "Book"} {
		_, err := env.gw.Create(ctx, gateway.Items, "", gateway.Document{
			"listId": l.ID,
			"name":   name,
		})
		require.NoError(t, err)
	}
	// An item on another list must survive the cascade.
	_, err = env.gw.Create(ctx, gateway.Items, "", gateway.Document{
		"listId": "other-list",
		"name":   "Bike",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, l.ID, owner.UserID))

	orphans, err := env.gw.QueryEqual(ctx, gateway.Items, "listId", l.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "every item on the list is removed")

	survivors, err := env.gw.QueryEqual(ctx, gateway.Items, "listId", "other-list")
	require.NoError(t, err)
	assert.Len(t, survivors, 1)

	_, err = env.svc.Get(ctx, l.ID)
	require.ErrorIs(t, err, ErrListNotFound)
}

func TestDeleteListIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l, err := env.svc.Create(ctx, "Wishlist", env.familyID, owner)
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, l.ID, owner.UserID))
	require.NoError(t, env.svc.Delete(ctx, l.ID, owner.UserID), "re-deleting is a no-op, not an error")
}

func TestDeleteListOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	l, err := env.svc.Create(ctx, "Wishlist", env.familyID, owner)
	require.NoError(t, err)

	err = env.svc.Delete(ctx, l.ID, stranger.UserID)
	require.ErrorIs(t, err, ErrNotListOwner)

	_, err = env.svc.Get(ctx, l.ID)
	require.NoError(t, err, "list survives the rejected delete")
}
