package family

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listyapp/listy/internal/gateway"
	"github.com/listyapp/listy/pkg/middleware"
)

func newTestService() *Service {
	return NewService(NewRepository(gateway.NewMemory()))
}

func TestCreateFamily(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, "Smiths", middleware.Identity{UserID: "founder", Name: "F"})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "Smiths", f.Name)
	assert.Equal(t, []string{"founder"}, f.Members, "creator is the first member")
}

func TestCreateFamilyRequiresName(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), "", middleware.Identity{UserID: "founder"})
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestJoinFamily(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, "Smiths", middleware.Identity{UserID: "founder"})
	require.NoError(t, err)

	joined, err := svc.Join(ctx, f.ID, "u2")
	require.NoError(t, err)
	assert.True(t, joined)

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"founder", "u2"}, got.Members)
}

func TestJoinFamilyIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, "Smiths", middleware.Identity{UserID: "founder"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		joined, err := svc.Join(ctx, f.ID, "u2")
		require.NoError(t, err)
		assert.True(t, joined, "repeat join still reports success")
	}

	got, err := svc.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Len(t, got.Members, 2, "member set unchanged after second join")
	assert.ElementsMatch(t, []string{"founder", "u2"}, got.Members)
}

func TestJoinUnknownFamilyFailsSoftly(t *testing.T) {
	svc := newTestService()

	joined, err := svc.Join(context.Background(), "no-such-family", "u2")
	require.NoError(t, err, "a missing family is a business condition, not a fault")
	assert.False(t, joined)
}

func TestGetUnknownFamily(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "no-such-family")
	require.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestIsMember(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, "Smiths", middleware.Identity{UserID: "founder"})
	require.NoError(t, err)

	isMember, err := svc.IsMember(ctx, f.ID, "founder")
	require.NoError(t, err)
	assert.True(t, isMember)

	isMember, err = svc.IsMember(ctx, f.ID, "stranger")
	require.NoError(t, err)
	assert.False(t, isMember)

	isMember, err = svc.IsMember(ctx, "no-such-family", "founder")
	require.NoError(t, err)
	assert.False(t, isMember)
}
