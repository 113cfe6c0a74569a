package forest_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/flattree/forest"
)

// buildBenchForest returns a forest with fanout^depth-ish nodes: each of
// the fanout roots carries depth levels of fanout children.
func buildBenchForest(fanout, depth int) []forest.Node {
	var build func(prefix string, level int) forest.Node
	build = func(prefix string, level int) forest.Node {
		n := forest.Node{"id": prefix}
		if level == 0 {
			return n
		}
		kids := make([]forest.Node, fanout)
		for i := 0; i < fanout; i++ {
			kids[i] = build(prefix+"."+strconv.Itoa(i), level-1)
		}
		n["children"] = kids

		return n
	}

	roots := make([]forest.Node, fanout)
	for i := 0; i < fanout; i++ {
		roots[i] = build("r"+strconv.Itoa(i), depth)
	}

	return roots
}

func BenchmarkFlatten(b *testing.B) {
	tr, err := forest.NewTree(buildBenchForest(8, 3)) // ~4.6k nodes
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if snap := tr.Flatten(); snap.Len() == 0 {
			b.Fatal("empty projection")
		}
	}
}

func BenchmarkSnapshotBranch(b *testing.B) {
	tr, err := forest.NewTree(buildBenchForest(4, 6)) // deep chains
	if err != nil {
		b.Fatal(err)
	}
	snap := tr.Flatten()
	leaf := "r0.0.0.0.0.0.0"
	if !snap.Contains(leaf) {
		b.Fatal("missing bench leaf")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(snap.Branch(leaf)) == 0 {
			b.Fatal("empty branch")
		}
	}
}
