// Package edit: the seven structural operations.
//
// Each operation follows the same shape: derive a fresh Snapshot, resolve
// the target through the id index, read the relations it needs, then
// funnel exactly one logical structural change through
// Tree.ReplaceChildren. Unmet preconditions are comma-ok no-ops.
package edit

import "github.com/katalvlaran/flattree/forest"

// insertAt returns a fresh slice with n spliced in at position i.
// Existing nodes keep their identity; only slots move.
func insertAt(s []forest.Node, i int, n forest.Node) []forest.Node {
	out := make([]forest.Node, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, n)
	out = append(out, s[i:]...)

	return out
}

// removeAt returns a fresh slice without the element at position i.
func removeAt(s []forest.Node, i int) []forest.Node {
	out := make([]forest.Node, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)

	return out
}

// ownerOf returns the node owning id's sibling slice, or nil when id is a
// root (ReplaceChildren treats nil as the root sequence).
func ownerOf(snap *forest.Snapshot, id string) forest.Node {
	p, ok := snap.Parent(id)
	if !ok {
		return nil
	}

	return p
}

// InsertSibling inserts a new empty node (fresh id only) into the
// target's siblings immediately after the target, and returns the new
// node's id. For a root-level target the insertion happens in the root
// sequence itself. Unknown id: no-op, ("", false).
// Complexity: O(n) for the re-flatten, O(len(siblings)) for the splice.
func (e *Editor) InsertSibling(pID string) (string, bool) {
	// 1. Re-derive the flat view and resolve the target.
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx < 0 {
		return "", false
	}

	// 2. Read the relations before mutating.
	sibs := snap.Siblings(pID)
	owner := ownerOf(snap, pID)

	// 3. One structural change: splice the new node in after the target.
	n, id := e.tree.NewNode()
	e.tree.ReplaceChildren(owner, insertAt(sibs, idx+1, n))

	return id, true
}

// InsertChild prepends a new empty node (fresh id only) to the target's
// children, creating the children sequence if absent, and returns the new
// node's id. Unknown id: no-op, ("", false).
// Complexity: O(n) for the re-flatten, O(len(children)) for the splice.
func (e *Editor) InsertChild(pID string) (string, bool) {
	snap := e.tree.Flatten()
	target, ok := snap.Node(pID)
	if !ok {
		return "", false
	}

	n, id := e.tree.NewNode()
	kids := e.tree.Aliases().ChildrenOf(target)
	e.tree.ReplaceChildren(target, insertAt(kids, 0, n))

	return id, true
}

// Delete removes the target (and, implicitly, its subtree) from its
// siblings and returns the id of the node that should receive focus next,
// chosen by priority: next sibling, prev sibling, parent, else the first
// node of the new flat view. Root deletion is rejected — "a parent must
// exist" is a uniform precondition — so unknown ids and roots both yield
// ("", false).
// Complexity: O(n).
func (e *Editor) Delete(pID string) (string, bool) {
	// 1. Resolve the target and require a parent.
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx < 0 {
		return "", false
	}
	parent, hasParent := snap.Parent(pID)
	if !hasParent {
		return "", false // root deletion is unsupported
	}

	// 2. Capture the focus candidates before the splice invalidates them.
	next, hasNext := snap.Next(pID)
	prev, hasPrev := snap.Prev(pID)
	sibs := snap.Siblings(pID)

	// 3. One structural change: detach the target slot.
	e.tree.ReplaceChildren(parent, removeAt(sibs, idx))

	// 4. Focus priority: next → prev → parent → first of the new view.
	a := e.tree.Aliases()
	if hasNext {
		if id, ok := a.IDOf(next); ok {
			return id, true
		}
	}
	if hasPrev {
		if id, ok := a.IDOf(prev); ok {
			return id, true
		}
	}
	if id, ok := a.IDOf(parent); ok {
		return id, true
	}
	// Reachable only with payloads mangled after construction: every
	// deleted node had a parent, so the chain above normally terminates.
	if ids := e.tree.Flatten().IDs(); len(ids) > 0 {
		return ids[0], true
	}

	return "", true
}

// MoveUp swaps the target with its prev sibling in place. Boundary (first
// position) and unknown ids are no-ops returning false.
// Complexity: O(n) for the re-flatten, O(1) for the swap.
func (e *Editor) MoveUp(pID string) bool {
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx <= 0 { // -1 unknown, 0 first sibling
		return false
	}

	sibs := snap.Siblings(pID)
	sibs[idx-1], sibs[idx] = sibs[idx], sibs[idx-1]
	e.tree.ReplaceChildren(ownerOf(snap, pID), sibs)

	return true
}

// MoveDown swaps the target with its next sibling in place. Boundary
// (last position) and unknown ids are no-ops returning false.
// Complexity: O(n) for the re-flatten, O(1) for the swap.
func (e *Editor) MoveDown(pID string) bool {
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx < 0 {
		return false
	}
	sibs := snap.Siblings(pID)
	if idx >= len(sibs)-1 { // last sibling
		return false
	}

	sibs[idx], sibs[idx+1] = sibs[idx+1], sibs[idx]
	e.tree.ReplaceChildren(ownerOf(snap, pID), sibs)

	return true
}

// Promote moves the target up one level: it is removed from its current
// siblings and reinserted among its parent's siblings immediately after
// the parent — the target becomes a sibling of its former parent. The
// parent must itself have a parent (promoting a root's direct child would
// create a new root, which this design does not allow). Returns the
// former parent's id. Unknown ids and unmet preconditions: ("", false).
// Complexity: O(n).
func (e *Editor) Promote(pID string) (string, bool) {
	// 1. Resolve the target, its parent, and the grandparent level.
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx < 0 {
		return "", false
	}
	parent, ok := snap.Parent(pID)
	if !ok {
		return "", false // target is a root
	}
	a := e.tree.Aliases()
	parentID, ok := a.IDOf(parent)
	if !ok {
		return "", false
	}
	if _, ok = snap.Parent(parentID); !ok {
		return "", false // parent is a root: no grandparent to adopt
	}

	// 2. Capture both splice sites before mutating. The two slices are
	//    distinct arrays (parent and grandparent levels), so the first
	//    splice cannot disturb the second.
	target, _ := snap.Node(pID)
	sibs := snap.Siblings(pID)
	pSibs := snap.Siblings(parentID)
	pIdx := snap.Index(parentID)
	grand := ownerOf(snap, parentID)

	// 3. Detach from the old level, then reinsert beside the parent.
	e.tree.ReplaceChildren(parent, removeAt(sibs, idx))
	e.tree.ReplaceChildren(grand, insertAt(pSibs, pIdx+1, target))

	return parentID, true
}

// Demote moves the target down one level: it is removed from its current
// siblings and appended as the last child of its former prev sibling.
// Requires a prev sibling; returns its id. Unknown ids and first siblings:
// ("", false).
// Complexity: O(n).
func (e *Editor) Demote(pID string) (string, bool) {
	// 1. Resolve the target and require a prev sibling.
	snap := e.tree.Flatten()
	idx := snap.Index(pID)
	if idx < 0 {
		return "", false
	}
	prev, ok := snap.Prev(pID)
	if !ok {
		return "", false // first sibling: nothing to demote under
	}
	a := e.tree.Aliases()
	prevID, ok := a.IDOf(prev)
	if !ok {
		return "", false
	}

	// 2. Capture splice sites. prev's children are untouched by the
	//    sibling splice (different array), so order of edits is safe.
	target, _ := snap.Node(pID)
	sibs := snap.Siblings(pID)
	owner := ownerOf(snap, pID)

	// 3. Detach from the siblings, then append under prev.
	e.tree.ReplaceChildren(owner, removeAt(sibs, idx))
	kids := a.ChildrenOf(prev)
	e.tree.ReplaceChildren(prev, insertAt(kids, len(kids), target))

	return prevID, true
}

// Apply dispatches op against pID. MoveUp/MoveDown report their moved
// flag through the bool with an empty id; the remaining operations behave
// exactly as their named methods. Unknown Op values are no-ops.
func (e *Editor) Apply(op Op, pID string) (string, bool) {
	switch op {
	case OpInsertSibling:
		return e.InsertSibling(pID)
	case OpInsertChild:
		return e.InsertChild(pID)
	case OpDelete:
		return e.Delete(pID)
	case OpMoveUp:
		return "", e.MoveUp(pID)
	case OpMoveDown:
		return "", e.MoveDown(pID)
	case OpPromote:
		return e.Promote(pID)
	case OpDemote:
		return e.Demote(pID)
	default:
		return "", false
	}
}
