package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoReturnsRefetchedValue(t *testing.T) {
	state := "old"

	got, err := Do(context.Background(),
		func(ctx context.Context) error {
			state = "new"
			return nil
		},
		func(ctx context.Context) (string, error) {
			return state, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "new", got, "caller sees the store's state, not its own view")
}

func TestDoSkipsRefetchOnMutationFailure(t *testing.T) {
	boom := errors.New("boom")
	refetched := false

	_, err := Do(context.Background(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) (int, error) {
			refetched = true
			return 0, nil
		},
	)

	require.ErrorIs(t, err, boom)
	assert.False(t, refetched)
}

func TestDoPropagatesRefetchError(t *testing.T) {
	stale := errors.New("stale read")

	_, err := Do(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) ([]string, error) { return nil, stale },
	)

	require.ErrorIs(t, err, stale)
}
