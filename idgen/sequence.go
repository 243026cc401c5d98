package idgen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/packfold/msitab"
)

// Sequence mints identifiers of the form <PREFIX><n> against a shared
// used-identifier registry. The generated <Name>IdentifierGenerator
// types wrap a Sequence with the entity name, upper-cased, as prefix.
//
// A Sequence reattached to a pre-populated registry starts its counter
// at the registry's current length, so it never re-issues values that
// were loaded before it was created.
type Sequence struct {
	prefix string

	mu    sync.Mutex
	count int

	used *Used
}

// NewSequence returns a generator for the given prefix, sharing the
// given registry. The counter starts at the registry's current length.
func NewSequence(prefix string, used *Used) *Sequence {
	if used == nil {
		used = NewUsed()
	}
	return &Sequence{prefix: prefix, count: used.Len(), used: used}
}

// IDPrefix returns the prefix every minted identifier starts with.
func (s *Sequence) IDPrefix() string { return s.prefix }

// Used returns the shared used-identifier registry.
func (s *Sequence) Used() *Used { return s.used }

// Count returns how far the counter has advanced.
func (s *Sequence) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Next mints a fresh identifier. It advances the counter past any value
// already present in the registry and records the minted identifier
// before returning it.
func (s *Sequence) Next() (msitab.Identifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// The registry is shared with other holders; probe until an unused
	// value is claimed. Claiming is atomic, so two generators backed by
	// the same registry cannot mint the same identifier.
	for attempts := 0; attempts < 1<<20; attempts++ {
		s.count++
		id, err := msitab.ParseIdentifier(s.prefix + strconv.Itoa(s.count))
		if err != nil {
			return msitab.Identifier{}, fmt.Errorf("idgen: prefix %q: %w", s.prefix, err)
		}
		if s.used.TryAdd(id) {
			return id, nil
		}
	}
	return msitab.Identifier{}, msitab.ErrIdentifierExhausted
}
