// Package syncer implements the pull-based convergence contract: every
// mutation is followed by a mandatory re-read of the affected collection, and
// the caller is handed the refreshed snapshot rather than its own locally
// mutated view.
//
// There is no push channel. A client observes other participants' writes only
// on its next explicit read, so freshness is guaranteed only relative to the
// client's own last mutation; the staleness window until the next reload is a
// documented trade-off.
package syncer

import "context"

// Do runs mutate and, on success, refetches the affected state from the
// gateway. The refetched value is returned even if it already reflects
// further concurrent writes by other clients; that is the point.
func Do[T any](ctx context.Context, mutate func(context.Context) error, refetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if err := mutate(ctx); err != nil {
		return zero, err
	}

	return refetch(ctx)
}
