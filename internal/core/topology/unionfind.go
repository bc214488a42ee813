package topology

// UnionFind implements union-find over integer ids with path
// compression and union by rank.
type UnionFind struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

// NewUnionFind creates a UnionFind where each of n elements starts as
// its own set.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Find returns the root of the set containing id, compressing the path
// on the way up.
func (uf *UnionFind) Find(id int) int {
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[id] != root {
		uf.parent[id], id = root, uf.parent[id]
	}
	return root
}

// Union merges the sets containing a and b. Returns true if they were
// separate.
func (uf *UnionFind) Union(a, b int) bool {
	rootA, rootB := uf.Find(a), uf.Find(b)
	if rootA == rootB {
		return false
	}
	if uf.rank[rootA] < uf.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	if uf.rank[rootA] == uf.rank[rootB] {
		uf.rank[rootA]++
	}
	uf.count--
	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// SetSize returns the size of the set containing id.
func (uf *UnionFind) SetSize(id int) int {
	return uf.size[uf.Find(id)]
}
