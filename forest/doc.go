// Package forest defines the central Node, Tree, and Aliases types, and
// provides the pre-order projection (Flatten) that derives the flat view,
// id index, and relation accessors from the current forest shape.
//
// The Tree T owns an ordered sequence of root Nodes and is the sole source
// of truth; everything else in this package is derived from it:
//
//   - Flatten() walks the forest depth-first and returns a Snapshot: the
//     flat pre-order sequence of every node, an id → node index, and a
//     bindings side-table attaching each node to its parent and owning
//     sibling slice. Domain nodes are never written to.
//   - Relation accessors (Parent, Siblings, Index, Prev, Next, Branch) are
//     Snapshot methods computed on read from the bindings — they always
//     reflect the shape the Snapshot was derived from, and Stale() reports
//     whether the Tree has been mutated since.
//   - Every structural mutation funnels through ReplaceChildren, which
//     bumps the Tree's version counter so stale Snapshots are detectable.
//
// Why use forest.Tree?
//
//   - Open records — a Node is just map[string]any; the library claims only
//     the id and children keys, both remappable via Aliases.
//   - Derived, not stored — relations never live on the node payloads, so
//     they cannot go stale silently (a fresh Flatten is always correct).
//   - Fail-fast construction — NewTree validates aliases and rejects
//     duplicate or malformed ids eagerly.
//   - Deterministic order — pre-order: node before its children, children
//     in array order, subtree before the next sibling.
//
// Configuration Options:
//
//	– WithAliases(a)
//	    Remaps the storage keys for the id/children fields and the keys
//	    used by Snapshot.Relations. Defaults to the role names.
//
//	– WithIDFn(fn)
//	    Injects the id generator used by NewNode. Defaults to UUIDFn;
//	    SeqIDFn(prefix) gives reproducible ids for tests and fixtures.
//
// Core Methods:
//
//	// Construction & configuration
//	NewTree(roots, opts...) (*Tree, error)  // O(n) eager validation
//	DefaultAliases() Aliases                // role-name defaults
//	ParseAliases(data) (Aliases, error)     // YAML role→key overrides
//
//	// Tree
//	Roots() []Node                // live root slice
//	Flatten() *Snapshot           // O(n) full re-walk
//	NewNode() (Node, string)      // empty record + fresh id
//	ReplaceChildren(parent, kids) // the single mutation funnel
//	Check() error                 // structural integrity verification
//	Version() uint64              // bumped on every structural change
//
//	// Snapshot (derived flat view)
//	Order() []Node / IDs() []string / Len() int
//	Node(id) / Contains(id)              // id index
//	Parent(id) / Siblings(id) / Index(id)
//	Prev(id) / Next(id) / Branch(id)
//	Root(id) / Depth(id) / Relations(id)
//	Verify() error / Stale() bool
//
// Errors:
//
//	ErrNilNode        – nil node in the supplied forest
//	ErrMissingID      – node lacks the id field
//	ErrIDNotString    – id value is not a non-empty string
//	ErrDuplicateID    – two nodes share an id
//	ErrBadChildren    – children value is not a node sequence
//	ErrAliasEmpty     – an alias maps a role to the empty key
//	ErrAliasCollision – two roles map to the same storage key
//	ErrIntegrity      – Verify/Check found an invariant violation
//
// Concurrency: Tree methods are guarded by a single RWMutex; projections
// take read locks and mutations take the write lock. The intended contract
// is still a single logical writer — a Snapshot taken before a mutation
// must not drive a later mutation (re-derive instead; Stale() tells you).
package forest
