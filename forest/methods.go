// Package forest: Tree accessors and the single structural mutation funnel.
//
// All structural edits — the edit package's seven operations included —
// route through ReplaceChildren, so the version counter observes every
// change and derived Snapshots can detect staleness.
package forest

// Aliases returns the resolved role → storage-key configuration.
// Complexity: O(1).
func (t *Tree) Aliases() Aliases {
	return t.aliases
}

// Roots returns the live root slice. Callers must treat it as read-only;
// structural changes go through ReplaceChildren (or the edit package).
// Complexity: O(1).
func (t *Tree) Roots() []Node {
	t.muTree.RLock()
	defer t.muTree.RUnlock()

	return t.roots
}

// Len reports the number of root nodes.
// Complexity: O(1).
func (t *Tree) Len() int {
	t.muTree.RLock()
	defer t.muTree.RUnlock()

	return len(t.roots)
}

// Version reports the structural mutation counter. A Snapshot whose
// Version() differs was derived from an older shape.
// Complexity: O(1).
func (t *Tree) Version() uint64 {
	t.muTree.RLock()
	defer t.muTree.RUnlock()

	return t.version
}

// NewNode creates an empty record carrying only a freshly generated id
// under the configured key, and returns the node together with that id.
// The node is NOT attached to the forest — attachment is the caller's
// (typically the edit package's) single structural change.
// Complexity: O(1).
func (t *Tree) NewNode() (Node, string) {
	id := t.idFn()

	return Node{t.aliases.ID: id}, id
}

// ReplaceChildren is the single mutation funnel: it rewrites the sibling
// slice owned by parent and bumps the version counter.
//
//   - parent == nil replaces the root sequence itself (the root slice
//     plays the siblings role for root nodes).
//   - an empty kids slice removes the children key entirely, restoring
//     the canonical leaf shape.
//
// Unaffected nodes keep their identity: only the owning slice is swapped.
// Complexity: O(1).
func (t *Tree) ReplaceChildren(parent Node, kids []Node) {
	t.muTree.Lock()
	defer t.muTree.Unlock()

	if parent == nil {
		t.roots = kids
	} else if len(kids) == 0 {
		delete(parent, t.aliases.Children)
	} else {
		parent[t.aliases.Children] = kids
	}
	t.version++
}

// Check re-derives a fresh Snapshot and verifies the structural
// invariants against the current forest shape (see Snapshot.Verify).
// Intended for tests and defensive callers.
// Returns nil or an error wrapping ErrIntegrity (or an id-validation
// sentinel when the payloads themselves were mangled).
// Complexity: O(n).
func (t *Tree) Check() error {
	return t.Flatten().Verify()
}
