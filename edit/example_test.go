package edit_test

import (
	"fmt"

	"github.com/katalvlaran/flattree/edit"
	"github.com/katalvlaran/flattree/forest"
)

// ExampleEditor walks through an editing session: every mutation edits the
// tree, and the next snapshot reflects it.
func ExampleEditor() {
	roots := []forest.Node{
		{"id": "a", "children": []forest.Node{
			{"id": "b"},
			{"id": "c"},
		}},
	}
	tr, _ := forest.NewTree(roots, forest.WithIDFn(forest.SeqIDFn("n")))
	e, _ := edit.NewEditor(tr)

	// Insert a sibling after b, then tuck it under b.
	id, _ := e.InsertSibling("b")
	fmt.Println("inserted:", id, e.Snapshot().IDs())

	former, _ := e.Demote(id)
	fmt.Println("demoted under:", former, e.Snapshot().IDs())

	// Deleting it hands focus back by priority (no siblings → parent).
	focus, _ := e.Delete(id)
	fmt.Println("focus after delete:", focus, e.Snapshot().IDs())

	// Structural edge cases are no-ops, not errors.
	_, ok := e.Promote("b")
	fmt.Println("promote b applicable:", ok)

	// Output:
	// inserted: n1 [a b n1 c]
	// demoted under: b [a b n1 c]
	// focus after delete: b [a b c]
	// promote b applicable: false
}
