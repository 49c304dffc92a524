package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAssignsID(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Create(ctx, Lists, "", Document{"title": "Wishlist"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	doc, err := gw.Get(ctx, Lists, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Wishlist", doc["title"])
	assert.Equal(t, id, doc["id"])
}

func TestMemoryCreateWithExplicitID(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Create(ctx, Users, "uid-123", Document{"name": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "uid-123", id)
}

func TestMemoryGetAbsentReturnsNil(t *testing.T) {
	gw := NewMemory()

	doc, err := gw.Get(context.Background(), Items, "nope")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryQueryEqual(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	_, err := gw.Create(ctx, Items, "", Document{"listId": "l1", "name": "Sweater"})
	require.NoError(t, err)
	_, err = gw.Create(ctx, Items, "", Document{"listId": "l1", "name": "Socks"})
	require.NoError(t, err)
	_, err = gw.Create(ctx, Items, "", Document{"listId": "l2", "name": "Book"})
	require.NoError(t, err)

	docs, err := gw.QueryEqual(ctx, Items, "listId", "l1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = gw.QueryEqual(ctx, Items, "listId", "l3")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryUpdatePartialMergesFields(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Create(ctx, Items, "", Document{"name": "Sweater", "isBought": false})
	require.NoError(t, err)

	require.NoError(t, gw.UpdatePartial(ctx, Items, id, Document{"isBought": true}))

	doc, err := gw.Get(ctx, Items, id)
	require.NoError(t, err)
	assert.Equal(t, true, doc["isBought"])
	assert.Equal(t, "Sweater", doc["name"], "untouched fields survive the merge")
}

func TestMemoryUpdatePartialAbsentIsNoop(t *testing.T) {
	gw := NewMemory()

	err := gw.UpdatePartial(context.Background(), Items, "gone", Document{"isBought": true})
	require.NoError(t, err)
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Create(ctx, Lists, "", Document{"title": "Wishlist"})
	require.NoError(t, err)

	require.NoError(t, gw.Delete(ctx, Lists, id))
	require.NoError(t, gw.Delete(ctx, Lists, id))

	doc, err := gw.Get(ctx, Lists, id)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryReadsAreIsolatedCopies(t *testing.T) {
	gw := NewMemory()
	ctx := context.Background()

	id, err := gw.Create(ctx, Lists, "", Document{"title": "Wishlist"})
	require.NoError(t, err)

	doc, err := gw.Get(ctx, Lists, id)
	require.NoError(t, err)
	doc["title"] = "tampered"

	again, err := gw.Get(ctx, Lists, id)
	require.NoError(t, err)
	assert.Equal(t, "Wishlist", again["title"])
}
