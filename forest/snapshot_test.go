package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flattree/forest"
)

// ids projects a node slice to its id sequence under the default alias.
func ids(a forest.Aliases, nodes []forest.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if id, ok := a.IDOf(n); ok {
			out = append(out, id)
		}
	}

	return out
}

func TestSnapshot_RelationCorrectness(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	snap := tr.Flatten()
	a := tr.Aliases()

	// Node 6: prev 5, no next, parent 2, index 1, branch [1 2 6].
	prev, ok := snap.Prev("6")
	require.True(t, ok)
	prevID, _ := a.IDOf(prev)
	assert.Equal(t, "5", prevID)

	_, ok = snap.Next("6")
	assert.False(t, ok, "node 6 is the last sibling")

	parent, ok := snap.Parent("6")
	require.True(t, ok)
	parentID, _ := a.IDOf(parent)
	assert.Equal(t, "2", parentID)

	assert.Equal(t, 1, snap.Index("6"))
	assert.Equal(t, []string{"1", "2", "6"}, ids(a, snap.Branch("6")))
	assert.Equal(t, 2, snap.Depth("6"))

	root, ok := snap.Root("6")
	require.True(t, ok)
	rootID, _ := a.IDOf(root)
	assert.Equal(t, "1", rootID)
}

func TestSnapshot_RootRelations(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	snap := tr.Flatten()
	a := tr.Aliases()

	_, ok := snap.Parent("1")
	assert.False(t, ok, "roots have no parent")
	_, ok = snap.Prev("1")
	assert.False(t, ok)
	assert.Equal(t, 0, snap.Index("1"))
	assert.Equal(t, 0, snap.Depth("1"))
	assert.Equal(t, []string{"1"}, ids(a, snap.Branch("1")))

	// The root sequence plays the siblings role for root nodes.
	assert.Equal(t, []string{"1"}, ids(a, snap.Siblings("1")))
}

func TestSnapshot_SiblingsAreLive(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	snap := tr.Flatten()

	// The siblings accessor hands out the owning storage, not a copy:
	// a payload write through it is visible through the id index.
	sibs := snap.Siblings("5")
	require.Len(t, sibs, 2)
	sibs[0]["marker"] = true

	five, ok := snap.Node("5")
	require.True(t, ok)
	assert.Equal(t, true, five["marker"])
}

func TestSnapshot_UnknownID(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	snap := tr.Flatten()

	_, ok := snap.Node("ghost")
	assert.False(t, ok)
	assert.False(t, snap.Contains("ghost"))
	assert.Nil(t, snap.Siblings("ghost"))
	assert.Equal(t, -1, snap.Index("ghost"))
	assert.Equal(t, -1, snap.Depth("ghost"))
	assert.Nil(t, snap.Branch("ghost"))
	_, ok = snap.Parent("ghost")
	assert.False(t, ok)
	_, ok = snap.Prev("ghost")
	assert.False(t, ok)
	_, ok = snap.Next("ghost")
	assert.False(t, ok)
	_, ok = snap.Root("ghost")
	assert.False(t, ok)
	_, ok = snap.Relations("ghost")
	assert.False(t, ok)
}

func TestSnapshot_Relations(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	snap := tr.Flatten()
	a := tr.Aliases()

	rel, ok := snap.Relations("6")
	require.True(t, ok)
	assert.Equal(t, 1, rel["index"])
	assert.Equal(t, []string{"1", "2", "6"}, ids(a, rel["branch"].([]forest.Node)))
	assert.Contains(t, rel, "parent")
	assert.Contains(t, rel, "prev")
	assert.NotContains(t, rel, "next", "absence means absent")
	assert.Contains(t, rel, "siblings")

	rel, ok = snap.Relations("1")
	require.True(t, ok)
	assert.NotContains(t, rel, "parent")
	assert.NotContains(t, rel, "prev")
	assert.NotContains(t, rel, "next")
}

func TestSnapshot_Verify(t *testing.T) {
	tr, err := forest.NewTree(buildFixture())
	require.NoError(t, err)
	assert.NoError(t, tr.Flatten().Verify())
	assert.NoError(t, tr.Check())

	// Mangle a payload id after construction: the next projection's
	// integrity check must notice.
	snap := tr.Flatten()
	three, ok := snap.Node("3")
	require.True(t, ok)
	delete(three, "id")

	err = tr.Check()
	assert.ErrorIs(t, err, forest.ErrIntegrity)
}
