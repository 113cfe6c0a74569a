// Package edit implements the structural edit operations over a
// forest.Tree: insert-sibling, insert-child, delete, move-up, move-down,
// promote, and demote.
//
// Every operation targets a node by id, resolves it through a freshly
// derived forest.Snapshot (never a cached one), reads the relation
// accessors it needs, and performs one logical structural change on the
// tree — the flat view is only ever a derived artifact and is never
// edited directly. The next Flatten reflects the change.
//
// Key behaviors:
//   - Unknown target id: benign no-op — comma-ok false, never an error.
//   - Structural preconditions unmet (deleting a root, promoting a root's
//     direct child, demoting a first sibling, moving past a boundary):
//     also comma-ok no-ops, communicating "not applicable".
//   - Splices preserve identity: nodes are never copied, only slots move,
//     and untouched sibling slices keep their storage.
//   - Inserted nodes are empty records carrying only a fresh id from the
//     tree's injected IDFn.
//
// Operations:
//
//	InsertSibling(pID) (string, bool) // new node after target; its id
//	InsertChild(pID)   (string, bool) // new node prepended to children; its id
//	Delete(pID)        (string, bool) // removes target+subtree; focus id
//	MoveUp(pID)        bool           // swap with prev sibling
//	MoveDown(pID)      bool           // swap with next sibling
//	Promote(pID)       (string, bool) // become sibling of former parent; its id
//	Demote(pID)        (string, bool) // become last child of prev sibling; its id
//	Apply(op, pID)     (string, bool) // dispatch by Op value
//
// Delete's focus id is chosen by priority: the target's next sibling,
// else its prev sibling, else its parent, else the first node of the new
// flat view. Root deletion is rejected ("a parent must exist" is a
// uniform precondition), so the forest never empties through Delete.
//
// Errors:
//
//	ErrNilTree – NewEditor received a nil tree
//
// Concurrency: the Editor inherits the tree's single-logical-writer
// contract; each operation re-derives its Snapshot, so an Editor never
// acts on relations computed before an earlier mutation.
package edit
