// Package forest: type declarations, sentinel errors, and the NewTree
// constructor with eager forest validation.
//
// This file declares Node, Tree, Option, the sentinel errors, and NewTree.
// Projection lives in flatten.go / snapshot.go; mutation primitives live
// in methods.go.
package forest

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for forest construction and integrity checking.
var (
	// ErrNilNode indicates a nil Node inside the supplied forest.
	ErrNilNode = errors.New("forest: node is nil")

	// ErrMissingID indicates a node without the configured id field.
	ErrMissingID = errors.New("forest: node has no id field")

	// ErrIDNotString indicates an id value that is not a non-empty string.
	ErrIDNotString = errors.New("forest: node id is not a non-empty string")

	// ErrDuplicateID indicates two nodes in the forest share an id.
	ErrDuplicateID = errors.New("forest: duplicate node id")

	// ErrBadChildren indicates a children value that is not a node sequence.
	ErrBadChildren = errors.New("forest: children field is not a node sequence")

	// ErrAliasEmpty indicates an alias mapping a role to the empty key.
	ErrAliasEmpty = errors.New("forest: alias key is empty")

	// ErrAliasCollision indicates two roles mapped to the same storage key.
	ErrAliasCollision = errors.New("forest: alias keys collide")

	// ErrIntegrity indicates Verify/Check found an invariant violation.
	ErrIntegrity = errors.New("forest: integrity violation")
)

// Node is an open, extensible record of arbitrary fields. The library
// claims exactly two keys (both remappable via Aliases): the unique id,
// and the optional ordered children sequence (absent means leaf). All
// other fields are caller payload and are never touched.
type Node map[string]any

// Option configures behavior of a Tree before creation.
type Option func(t *Tree)

// WithAliases overrides the storage keys for the id/children fields and
// the relation keys used by Snapshot.Relations. The aliases are validated
// by NewTree (every key non-empty, all pairwise distinct).
func WithAliases(a Aliases) Option {
	return func(t *Tree) { t.aliases = a }
}

// WithIDFn injects the id generator used by NewNode. Callers supplying
// their own IDFn must preserve its collision-free guarantee themselves.
// Panics if fn is nil (programmer error in configuration).
func WithIDFn(fn IDFn) Option {
	if fn == nil {
		panic("forest: WithIDFn called with nil IDFn")
	}

	return func(t *Tree) { t.idFn = fn }
}

// Tree is the in-memory forest: an ordered sequence of root Nodes plus the
// resolved configuration. It is the sole source of truth — the flat view,
// id index and relation accessors are all derived from it by Flatten.
//
// muTree guards roots and version. The version counter is bumped by every
// structural mutation so derived Snapshots can detect staleness.
type Tree struct {
	muTree sync.RWMutex // guards roots and version

	// Configuration (immutable after construction)
	aliases Aliases // role → storage-key mapping
	idFn    IDFn    // collision-free id generator

	// Storage
	roots   []Node // ordered root sequence
	version uint64 // structural mutation counter
}

// NewTree creates a Tree over the caller-supplied forest and takes
// ownership of it. The forest is validated eagerly: every node must carry
// a non-empty string id under the configured key, ids must be unique
// across the whole forest, and children sequences are canonicalized to
// []Node in place (accepting []any / []map[string]any as produced by
// generic JSON decoding).
//
// Returns ErrAliasEmpty / ErrAliasCollision for a bad alias set, and
// ErrNilNode / ErrMissingID / ErrIDNotString / ErrDuplicateID /
// ErrBadChildren for a malformed forest.
// Complexity: O(n) over all nodes.
func NewTree(roots []Node, opts ...Option) (*Tree, error) {
	// 1. Start from deterministic defaults, then apply options in order.
	t := &Tree{
		aliases: DefaultAliases(),
		idFn:    UUIDFn,
		roots:   roots,
	}
	for _, opt := range opts {
		opt(t)
	}

	// 2. Validate the alias set before touching any node.
	if err := t.aliases.validate(); err != nil {
		return nil, err
	}

	// 3. Walk the whole forest once: id validation + children
	//    canonicalization. Duplicate ids fail fast here so the id index
	//    never has to resolve a collision at projection time.
	seen := make(map[string]struct{})
	if err := canonicalize(t.aliases, roots, seen); err != nil {
		return nil, err
	}

	return t, nil
}

// canonicalize validates ids and normalizes children sequences to []Node,
// recursing in pre-order. seen accumulates ids across the whole forest.
func canonicalize(a Aliases, siblings []Node, seen map[string]struct{}) error {
	var n Node
	for i := range siblings {
		n = siblings[i]
		if n == nil {
			return fmt.Errorf("%w: at sibling position %d", ErrNilNode, i)
		}

		// Id presence and shape.
		raw, ok := n[a.ID]
		if !ok {
			return fmt.Errorf("%w: key %q at sibling position %d", ErrMissingID, a.ID, i)
		}
		id, ok := raw.(string)
		if !ok || id == "" {
			return fmt.Errorf("%w: key %q holds %T", ErrIDNotString, a.ID, raw)
		}

		// Uniqueness across the whole forest.
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		// Children canonicalization + recursion.
		kids, err := normalizeChildren(a, n)
		if err != nil {
			return fmt.Errorf("node %q: %w", id, err)
		}
		if len(kids) > 0 {
			if err = canonicalize(a, kids, seen); err != nil {
				return err
			}
		}
	}

	return nil
}

// normalizeChildren rewrites n's children value as []Node, accepting the
// shapes a generic JSON decode produces. An absent or empty sequence is
// normalized to an absent key (leaf).
func normalizeChildren(a Aliases, n Node) ([]Node, error) {
	raw, ok := n[a.Children]
	if !ok {
		return nil, nil // leaf
	}

	var kids []Node
	switch v := raw.(type) {
	case []Node:
		kids = v
	case []any:
		kids = make([]Node, len(v))
		for i, el := range v {
			switch child := el.(type) {
			case Node:
				kids[i] = child
			case map[string]any:
				kids[i] = Node(child)
			default:
				return nil, fmt.Errorf("%w: element %d is %T", ErrBadChildren, i, el)
			}
		}
	case []map[string]any:
		kids = make([]Node, len(v))
		for i, el := range v {
			kids[i] = Node(el)
		}
	case nil:
		kids = nil
	default:
		return nil, fmt.Errorf("%w: value is %T", ErrBadChildren, raw)
	}

	if len(kids) == 0 {
		delete(n, a.Children) // empty means leaf; keep storage canonical
		return nil, nil
	}
	n[a.Children] = kids

	return kids, nil
}
