// Package flattree is your in-memory toolkit for projecting and editing
// rooted forests — JSON-like trees of arbitrarily-shaped records — through
// a derived, navigable flat view.
//
// 🚀 What is flattree?
//
//	A small, focused library built around one invariant: the tree is the
//	sole source of truth, and every navigational structure is re-derivable
//	from it. It brings together:
//		• Core primitives: open Node records, a Tree owning ordered roots
//		• Projection: deterministic pre-order flattening into a Snapshot
//		• Relations: parent, siblings, index, prev/next, branch — computed
//		  on demand, never stored on the nodes themselves
//		• Editing: insert-sibling, insert-child, delete, move-up,
//		  move-down, promote, demote — each one structural change
//
// ✨ Why choose flattree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, version counters, invariant checks
//   - Configurable – field aliasing for id/children storage keys, injected
//     id generation (UUID by default, deterministic schemes for tests)
//   - No surprises – structural edge cases are comma-ok no-ops, not errors
//
// Everything is organized under two subpackages:
//
//	forest/ — Node, Tree, Aliases, Flatten and the Snapshot relation set
//	edit/   — the Editor with the structural operations
//
// Quick ASCII example:
//
//	    A
//	   ╱│╲
//	  B C D      flattens to  [A B E C D]
//	  │
//	  E
//
// Dive into the package docs and examples/ for full usage.
//
//	go get github.com/katalvlaran/flattree
package flattree
