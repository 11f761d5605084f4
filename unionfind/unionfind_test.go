package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacklj/ccl/unionfind"
)

// TestMakeSet_NewNodeIsOwnRoot verifies a fresh singleton is its own
// representative.
func TestMakeSet_NewNodeIsOwnRoot(t *testing.T) {
	ds := unionfind.New()

	n := ds.MakeSet(7)
	require.NotNil(t, n)
	assert.Equal(t, 7, n.Value, "node must carry the value it was created for")
	assert.Same(t, n, ds.Find(n), "singleton must be its own representative")
	assert.Equal(t, 1, ds.Len())
}

// TestMakeSet_Idempotent verifies duplicate MakeSet returns the existing
// node unchanged rather than resetting its class membership.
func TestMakeSet_Idempotent(t *testing.T) {
	ds := unionfind.New()

	one := ds.MakeSet(1)
	two := ds.MakeSet(2)
	ds.Union(one, two)

	again := ds.MakeSet(1)
	assert.Same(t, one, again, "duplicate MakeSet must return the existing node")
	assert.Same(t, ds.Find(one), ds.Find(two), "idempotent MakeSet must not split a merged class")
	assert.Equal(t, 2, ds.Len(), "duplicate MakeSet must not grow the registry")
}

// TestLookup covers present and absent values.
func TestLookup(t *testing.T) {
	ds := unionfind.New()
	n := ds.MakeSet(3)

	got, ok := ds.Lookup(3)
	require.True(t, ok)
	assert.Same(t, n, got)

	_, ok = ds.Lookup(99)
	assert.False(t, ok, "Lookup of an unregistered value must report absence")
}

// TestUnion_MergesClasses verifies transitive merging: after
// Union(1,2) and Union(2,3), all three values share one representative.
func TestUnion_MergesClasses(t *testing.T) {
	ds := unionfind.New()
	one := ds.MakeSet(1)
	two := ds.MakeSet(2)
	three := ds.MakeSet(3)
	four := ds.MakeSet(4)

	ds.Union(one, two)
	ds.Union(two, three)

	root := ds.Find(one)
	assert.Same(t, root, ds.Find(two))
	assert.Same(t, root, ds.Find(three))
	assert.NotSame(t, root, ds.Find(four), "untouched singleton must stay separate")
}

// TestUnion_NoOps verifies Union on the same node, and on nodes already in
// the same class, leaves the forest unchanged.
func TestUnion_NoOps(t *testing.T) {
	ds := unionfind.New()
	a := ds.MakeSet(10)
	b := ds.MakeSet(20)

	ds.Union(a, a) // same node
	assert.NotSame(t, ds.Find(a), ds.Find(b))

	ds.Union(a, b)
	rootBefore := ds.Find(a)
	ds.Union(a, b) // already merged
	ds.Union(b, a) // either direction
	assert.Same(t, rootBefore, ds.Find(a))
	assert.Same(t, rootBefore, ds.Find(b))
}

// TestUnion_RankTie verifies the tie rule: merging two rank-0 singletons
// attaches the first root under the second, so the second survives as
// representative.
func TestUnion_RankTie(t *testing.T) {
	ds := unionfind.New()
	a := ds.MakeSet(1)
	b := ds.MakeSet(2)

	ds.Union(a, b)
	assert.Same(t, b, ds.Find(a), "on a rank tie, b's root must survive")
}

// TestFind_PathCompression builds a deliberately deep chain of merges and
// verifies every member still resolves to the shared representative.
func TestFind_PathCompression(t *testing.T) {
	ds := unionfind.New()

	const n = 1000
	nodes := make([]*unionfind.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = ds.MakeSet(i)
	}
	for i := 1; i < n; i++ {
		ds.Union(nodes[i-1], nodes[i])
	}

	root := ds.Find(nodes[0])
	for i := 1; i < n; i++ {
		assert.Same(t, root, ds.Find(nodes[i]), "value %d must share the chain's representative", i)
	}
}

// TestIndependentInstances verifies two DisjointSets never share nodes,
// even for identical values.
func TestIndependentInstances(t *testing.T) {
	ds1 := unionfind.New()
	ds2 := unionfind.New()

	a := ds1.MakeSet(5)
	b := ds2.MakeSet(5)
	assert.NotSame(t, a, b, "each DisjointSet must own its node registry")

	ds1.Union(a, ds1.MakeSet(6))
	_, ok := ds2.Lookup(6)
	assert.False(t, ok, "merging in one instance must not leak into another")
}
