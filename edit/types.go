// Package edit: Editor construction, the Op enumeration, and sentinel
// errors.
package edit

import (
	"errors"

	"github.com/katalvlaran/flattree/forest"
)

// ErrNilTree is returned when a nil *forest.Tree is passed to NewEditor.
var ErrNilTree = errors.New("edit: tree is nil")

// Op enumerates the structural operations for Apply dispatch.
type Op int

const (
	OpInsertSibling Op = iota // insert a new node after the target
	OpInsertChild             // prepend a new node to the target's children
	OpDelete                  // remove the target and its subtree
	OpMoveUp                  // swap the target with its prev sibling
	OpMoveDown                // swap the target with its next sibling
	OpPromote                 // make the target a sibling of its parent
	OpDemote                  // make the target the last child of its prev
)

// String returns the canonical operation name.
func (op Op) String() string {
	switch op {
	case OpInsertSibling:
		return "insert-sibling"
	case OpInsertChild:
		return "insert-child"
	case OpDelete:
		return "delete"
	case OpMoveUp:
		return "move-up"
	case OpMoveDown:
		return "move-down"
	case OpPromote:
		return "promote"
	case OpDemote:
		return "demote"
	default:
		return "unknown"
	}
}

// Editor performs structural edits on a forest.Tree. It holds no state of
// its own beyond the tree reference: every operation re-derives a fresh
// Snapshot, so relations are never read across a mutation boundary.
type Editor struct {
	tree *forest.Tree
}

// NewEditor wraps t in an Editor. Returns ErrNilTree when t is nil.
// Complexity: O(1).
func NewEditor(t *forest.Tree) (*Editor, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	return &Editor{tree: t}, nil
}

// Tree returns the underlying forest.Tree.
func (e *Editor) Tree() *forest.Tree {
	return e.tree
}

// Snapshot derives a fresh flat view of the current forest shape —
// shorthand for Tree().Flatten().
// Complexity: O(n).
func (e *Editor) Snapshot() *forest.Snapshot {
	return e.tree.Flatten()
}
