// Package forest: the Snapshot — a derived, read-only flat view with
// relation accessors computed on demand from the projection bindings.
package forest

import "fmt"

// Snapshot is the derived flat view of a Tree at one version: the
// pre-order sequence of all nodes, the id index, and the relation
// bindings. It is never independently mutated; after the Tree changes,
// Stale() turns true and a fresh Flatten supersedes it. A caller must not
// drive a mutation from a stale Snapshot — the relation accessors reflect
// the shape at derivation time, not the current one.
type Snapshot struct {
	tree    *Tree
	aliases Aliases
	version uint64
	order   []Node
	index   map[string]Node
	bind    map[string]binding
}

// Len reports the number of nodes in the flat view.
// Complexity: O(1).
func (s *Snapshot) Len() int {
	return len(s.order)
}

// Version reports the Tree version this Snapshot was derived from.
// Complexity: O(1).
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Stale reports whether the Tree has been structurally mutated since this
// Snapshot was derived. Stale snapshots remain readable but must not be
// used to navigate for a mutation — re-derive instead.
// Complexity: O(1).
func (s *Snapshot) Stale() bool {
	return s.tree.Version() != s.version
}

// Order returns a copy of the flat pre-order sequence. The nodes are the
// live records; the slice itself is fresh so callers cannot disturb the
// Snapshot by reordering it.
// Complexity: O(n).
func (s *Snapshot) Order() []Node {
	out := make([]Node, len(s.order))
	copy(out, s.order)

	return out
}

// IDs returns the flat pre-order sequence of node ids.
// Complexity: O(n).
func (s *Snapshot) IDs() []string {
	out := make([]string, 0, len(s.order))
	for _, n := range s.order {
		if id, ok := s.aliases.IDOf(n); ok {
			out = append(out, id)
		}
	}

	return out
}

// Node resolves id through the id index.
// Complexity: O(1).
func (s *Snapshot) Node(id string) (Node, bool) {
	n, ok := s.index[id]

	return n, ok
}

// Contains reports whether id resolves through the id index.
// Complexity: O(1).
func (s *Snapshot) Contains(id string) bool {
	_, ok := s.index[id]

	return ok
}

// Siblings returns the exact slice that contained the node at derivation
// time — the owning children slice, or the root slice for roots. A live
// reference, not a copy; nil when id is unknown.
// Complexity: O(1).
func (s *Snapshot) Siblings(id string) []Node {
	b, ok := s.bind[id]
	if !ok {
		return nil
	}

	return b.siblings
}

// Index returns the node's position within its Siblings, or -1 when id is
// unknown.
// Complexity: O(1).
func (s *Snapshot) Index(id string) int {
	b, ok := s.bind[id]
	if !ok {
		return -1
	}

	return b.idx
}

// Parent returns the node whose children slice contains id; absent for
// roots and unknown ids.
// Complexity: O(1).
func (s *Snapshot) Parent(id string) (Node, bool) {
	b, ok := s.bind[id]
	if !ok || b.parent == nil {
		return nil, false
	}

	return b.parent, true
}

// Prev returns the sibling immediately before the node; absent at the
// first position and for unknown ids.
// Complexity: O(1).
func (s *Snapshot) Prev(id string) (Node, bool) {
	b, ok := s.bind[id]
	if !ok || b.idx == 0 {
		return nil, false
	}

	return b.siblings[b.idx-1], true
}

// Next returns the sibling immediately after the node; absent at the last
// position and for unknown ids.
// Complexity: O(1).
func (s *Snapshot) Next(id string) (Node, bool) {
	b, ok := s.bind[id]
	if !ok || b.idx >= len(b.siblings)-1 {
		return nil, false
	}

	return b.siblings[b.idx+1], true
}

// Branch returns the sequence of nodes from the forest root down to and
// including the node, obtained by following parent bindings upward and
// reversing. Nil for unknown ids.
// Complexity: O(depth).
func (s *Snapshot) Branch(id string) []Node {
	b, ok := s.bind[id]
	if !ok {
		return nil
	}

	// Climb to the root, then reverse in place.
	path := []Node{s.index[id]}
	for b.parent != nil {
		path = append(path, b.parent)
		pid, pok := s.aliases.IDOf(b.parent)
		if !pok {
			break // mangled payload; stop climbing
		}
		if b, ok = s.bind[pid]; !ok {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Root returns the root ancestor of the node (the first element of its
// branch); the node itself when it is a root.
// Complexity: O(depth).
func (s *Snapshot) Root(id string) (Node, bool) {
	path := s.Branch(id)
	if len(path) == 0 {
		return nil, false
	}

	return path[0], true
}

// Depth reports the number of ancestors above the node (0 for roots), or
// -1 when id is unknown.
// Complexity: O(depth).
func (s *Snapshot) Depth(id string) int {
	path := s.Branch(id)
	if len(path) == 0 {
		return -1
	}

	return len(path) - 1
}

// Relations materializes the node's derived relation set as a map keyed
// by the configured alias keys: siblings, index and branch always;
// parent, prev and next only when present (absence means absent). The map
// is freshly allocated per call — relations are never persisted on the
// node itself.
// Complexity: O(depth).
func (s *Snapshot) Relations(id string) (map[string]any, bool) {
	b, ok := s.bind[id]
	if !ok {
		return nil, false
	}

	rel := map[string]any{
		s.aliases.Siblings: b.siblings,
		s.aliases.Index:    b.idx,
		s.aliases.Branch:   s.Branch(id),
	}
	if p, pok := s.Parent(id); pok {
		rel[s.aliases.Parent] = p
	}
	if p, pok := s.Prev(id); pok {
		rel[s.aliases.Prev] = p
	}
	if n, nok := s.Next(id); nok {
		rel[s.aliases.Next] = n
	}

	return rel, true
}

// Verify checks the structural invariants over this Snapshot:
//
//   - every flat-view entry carries a unique id and an index entry
//   - every non-root node sits inside its parent's children slice
//   - siblings[index] is the node itself
//
// Returns nil, or an error wrapping ErrIntegrity (ErrMissingID for
// payloads mangled after construction).
// Complexity: O(n).
func (s *Snapshot) Verify() error {
	// The flat view and the id index must cover each other exactly.
	if len(s.order) != len(s.index) {
		return fmt.Errorf("%w: flat view has %d nodes but id index has %d", ErrIntegrity, len(s.order), len(s.index))
	}
	for _, n := range s.order {
		id, ok := s.aliases.IDOf(n)
		if !ok {
			return fmt.Errorf("%w: flat view entry without usable id", ErrMissingID)
		}
		if _, ok = s.index[id]; !ok {
			return fmt.Errorf("%w: id %q missing from index", ErrIntegrity, id)
		}
	}

	// Binding positions must agree with the live slices.
	for id, b := range s.bind {
		if b.idx < 0 || b.idx >= len(b.siblings) {
			return fmt.Errorf("%w: id %q bound at %d of %d siblings", ErrIntegrity, id, b.idx, len(b.siblings))
		}
		if got, _ := s.aliases.IDOf(b.siblings[b.idx]); got != id {
			return fmt.Errorf("%w: siblings[%d] holds %q, want %q", ErrIntegrity, b.idx, got, id)
		}
		if b.parent != nil {
			kids := s.aliases.ChildrenOf(b.parent)
			if len(kids) != len(b.siblings) {
				return fmt.Errorf("%w: id %q siblings diverged from parent children", ErrIntegrity, id)
			}
			if got, _ := s.aliases.IDOf(kids[b.idx]); got != id {
				return fmt.Errorf("%w: id %q not at position %d of parent children", ErrIntegrity, id, b.idx)
			}
		}
	}

	return nil
}
