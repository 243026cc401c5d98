// Package idgen provides the runtime identifier generation machinery
// shared by the generated table and generator types: a registry of
// already-used identifiers guarded by a single lock, and generators
// that mint fresh identifiers against it.
package idgen

import (
	"sync"

	"github.com/packfold/msitab"
)

// Used is the shared registry of identifiers already inhabiting a
// primary-key column. One registry is created per table/generator pair
// and shared by reference between the two; every mutation is a single
// atomic check-and-append under the registry lock, so concurrent
// generation calls can never issue the same value.
type Used struct {
	mu  sync.Mutex
	ids []msitab.Identifier
	set map[string]struct{}
}

// NewUsed returns an empty registry.
func NewUsed() *Used {
	return &Used{set: make(map[string]struct{})}
}

// NewUsedFrom returns a registry pre-populated with the given
// identifiers, preserving order. Duplicates are dropped.
func NewUsedFrom(ids ...msitab.Identifier) *Used {
	u := NewUsed()
	for _, id := range ids {
		u.TryAdd(id)
	}
	return u
}

// TryAdd records id as used. It reports false if id was already present.
func (u *Used) TryAdd(id msitab.Identifier) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.set[id.String()]; ok {
		return false
	}
	u.set[id.String()] = struct{}{}
	u.ids = append(u.ids, id)
	return true
}

// Contains reports whether id is already used.
func (u *Used) Contains(id msitab.Identifier) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.set[id.String()]
	return ok
}

// Len returns the number of used identifiers.
func (u *Used) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ids)
}

// Snapshot returns a copy of the used identifiers in insertion order.
func (u *Used) Snapshot() []msitab.Identifier {
	u.mu.Lock()
	defer u.mu.Unlock()
	ids := make([]msitab.Identifier, len(u.ids))
	copy(ids, u.ids)
	return ids
}
