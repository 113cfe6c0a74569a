// Package forest: the Projector — pre-order flattening of the forest into
// a Snapshot (flat view + id index + relation bindings).
package forest

// binding attaches a node to the position it was found at during the last
// walk: its parent (nil for roots), the exact sibling slice that contains
// it, and its offsets. Bindings live on the Snapshot, never on the nodes,
// and are rebuilt wholesale by every Flatten — so a node that reappears in
// a later walk is re-bound by construction, never left stale.
type binding struct {
	parent   Node   // owning parent; nil for root nodes
	siblings []Node // live slice containing the node (root slice for roots)
	idx      int    // position within siblings at walk time
	ord      int    // position within the flat pre-order sequence
}

// flattenWalker accumulates the projection during a single walk.
type flattenWalker struct {
	aliases Aliases
	order   []Node             // flat pre-order sequence
	index   map[string]Node    // id → node
	bind    map[string]binding // id → relation binding
}

// Flatten walks the forest depth-first and derives the current flat view:
// every node exactly once, in pre-order (node before its children,
// children in array order, subtree before the next sibling), plus the
// id index and the relation bindings backing the Snapshot accessors.
//
// Flatten is a pure function of the current forest shape: it never
// mutates the forest, and repeated calls on an unchanged Tree yield
// equal Snapshots. There is no incremental update — recomputation is
// always a full re-walk (correctness over incremental performance).
//
// Nodes whose id field was mangled after construction are still emitted
// in the flat sequence (completeness) but get no index/binding entry; if
// two nodes share an id at walk time, the last one seen wins in the index.
// Complexity: O(n) time and space.
func (t *Tree) Flatten() *Snapshot {
	t.muTree.RLock()
	defer t.muTree.RUnlock()

	// 1. Walk the whole forest once, filling order, index and bindings.
	w := &flattenWalker{
		aliases: t.aliases,
		index:   make(map[string]Node),
		bind:    make(map[string]binding),
	}
	w.walk(t.roots, nil)

	// 2. Freeze the projection into a Snapshot stamped with the current
	//    version, so staleness is detectable after later mutations.
	return &Snapshot{
		tree:    t,
		aliases: t.aliases,
		version: t.version,
		order:   w.order,
		index:   w.index,
		bind:    w.bind,
	}
}

// walk visits siblings in order, binding each node to the slice it was
// found in and to parent, then recursing into its children.
func (w *flattenWalker) walk(siblings []Node, parent Node) {
	var n Node
	for i := range siblings {
		n = siblings[i]
		if n == nil {
			continue // tolerated at walk time; NewTree rejects this shape
		}

		// Pre-order: record the node before its subtree.
		w.order = append(w.order, n)

		if id, ok := w.aliases.IDOf(n); ok {
			w.index[id] = n // last-seen wins on a duplicate id
			w.bind[id] = binding{
				parent:   parent,
				siblings: siblings,
				idx:      i,
				ord:      len(w.order) - 1,
			}
		}

		// Children in array order, before the next sibling.
		if kids := w.aliases.ChildrenOf(n); len(kids) > 0 {
			w.walk(kids, n)
		}
	}
}
