package store

import (
	"context"
	"errors"
)

// ErrUnavailable signals that the backing storage is unreadable,
// unwritable or corrupt. Callers treat it as "no session": fail closed.
var ErrUnavailable = errors.New("store unavailable")

// Store persists the whole user/session document as a single unit.
//
// Load returns the full current state; Save replaces the persisted
// content entirely, never merging. Update runs fn on a freshly loaded
// state and persists the result while holding the store's single-writer
// lock, so a load-mutate-save sequence cannot interleave with another
// within this process. If fn returns an error nothing is written.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
	Update(ctx context.Context, fn func(*State) error) error
}
