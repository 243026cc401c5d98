package idgen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/packfold/msitab"
)

// Random mints identifiers from random UUIDs. It serves columns whose
// values must be unique across the whole database rather than within
// one table, where a sequential counter would leak ordering.
//
// Identifiers cannot start with a digit, so the hex form is prefixed
// with an underscore.
type Random struct {
	used *Used
}

// NewRandom returns a random generator sharing the given registry.
func NewRandom(used *Used) *Random {
	if used == nil {
		used = NewUsed()
	}
	return &Random{used: used}
}

// Used returns the shared used-identifier registry.
func (r *Random) Used() *Used { return r.used }

// Next mints a fresh random identifier.
func (r *Random) Next() (msitab.Identifier, error) {
	for attempts := 0; attempts < 64; attempts++ {
		hex := strings.ReplaceAll(uuid.NewString(), "-", "")
		id, err := msitab.ParseIdentifier("_" + hex)
		if err != nil {
			return msitab.Identifier{}, err
		}
		if r.used.TryAdd(id) {
			return id, nil
		}
	}
	return msitab.Identifier{}, msitab.ErrIdentifierExhausted
}
