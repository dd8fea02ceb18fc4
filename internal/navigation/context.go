package navigation

import (
	"context"
	"errors"
)

// ErrNoProvider is the panic value when the history accessor is used
// outside a tracker provider scope.
var ErrNoProvider = errors.New("navigation: history accessor used outside a tracker provider")

type trackerKey struct{}

// WithTracker scopes t to ctx.
func WithTracker(ctx context.Context, t *Tracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, t)
}

// FromContext returns the scoped tracker. It panics with ErrNoProvider when
// no provider installed one.
func FromContext(ctx context.Context) *Tracker {
	t, ok := ctx.Value(trackerKey{}).(*Tracker)
	if !ok || t == nil {
		panic(ErrNoProvider)
	}
	return t
}
