// Package forest: injected id generation schemes for newly created nodes.
package forest

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFn generates a node identifier. Every call must return a value unique
// across the forest's lifetime; the library trusts this contract and never
// re-checks freshly generated ids against the index.
type IDFn func() string

// UUIDFn is the default id scheme: a random RFC 4122 UUID string,
// collision-free for any practical forest size.
// Complexity: O(1). Never panics.
func UUIDFn() string {
	return uuid.NewString()
}

// SeqIDFn returns a deterministic prefixed-counter scheme, e.g.
// SeqIDFn("n") → "n1","n2",… Each returned IDFn owns its counter, so two
// schemes with the same prefix produce colliding ids — use one per Tree.
// Intended for tests, fixtures and golden output.
// Complexity: O(d) where d = number of decimal digits.
func SeqIDFn(prefix string) IDFn {
	var ctr uint64
	return func() string {
		return prefix + strconv.FormatUint(atomic.AddUint64(&ctr, 1), 10)
	}
}
