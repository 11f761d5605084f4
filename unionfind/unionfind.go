package unionfind

// Node is one member of an equivalence class. Value is the integer the node
// was created for; parent links form the forest (a root is its own parent);
// rank upper-bounds the subtree height and is meaningful only on roots.
type Node struct {
	Value  int
	parent *Node
	rank   int
}

// DisjointSet owns a forest of Nodes, indexed by Value for O(1) lookup.
// Nodes are created once per value and never deleted.
type DisjointSet struct {
	nodes map[int]*Node
}

// New constructs an empty DisjointSet.
func New() *DisjointSet {
	return &DisjointSet{nodes: make(map[int]*Node)}
}

// MakeSet registers value as a new singleton class and returns its node.
// If a node for value already exists it is returned unchanged, so MakeSet
// may be called defensively. Complexity: O(1).
func (ds *DisjointSet) MakeSet(value int) *Node {
	if n, ok := ds.nodes[value]; ok {
		return n
	}
	n := &Node{Value: value, rank: 0}
	n.parent = n // a fresh node is its own root
	ds.nodes[value] = n

	return n
}

// Lookup returns the node registered for value, if any. Complexity: O(1).
func (ds *DisjointSet) Lookup(value int) (*Node, bool) {
	n, ok := ds.nodes[value]

	return n, ok
}

// Len reports how many values have been registered via MakeSet.
func (ds *DisjointSet) Len() int {
	return len(ds.nodes)
}

// Find returns the representative (root) of the class containing n.
// Every node visited on the way up is re-parented directly onto the root
// (path compression), so repeated lookups along the same chain are O(1).
// Amortized complexity: O(α(n)).
func (ds *DisjointSet) Find(n *Node) *Node {
	// First walk: locate the root.
	root := n
	for root.parent != root {
		root = root.parent
	}
	// Second walk: compress the path onto the root.
	for n.parent != root {
		n.parent, n = root, n.parent
	}

	return root
}

// Union merges the classes containing a and b. It is a no-op when a and b
// are the same node or already share a representative. The root with smaller
// rank is attached under the root with larger rank; on a tie, a's root is
// attached under b's root and the surviving root's rank grows by one.
// Amortized complexity: O(α(n)).
func (ds *DisjointSet) Union(a, b *Node) {
	if a == b {
		return
	}

	aRoot := ds.Find(a)
	bRoot := ds.Find(b)
	if aRoot == bRoot {
		return // already in the same class
	}

	switch {
	case aRoot.rank > bRoot.rank:
		bRoot.parent = aRoot
	case aRoot.rank < bRoot.rank:
		aRoot.parent = bRoot
	default:
		aRoot.parent = bRoot
		bRoot.rank++ // the only place rank changes
	}
}
