package trie

import (
	"cmp"
	"slices"
)

// edge is one labelled child slot. The edges of a node have unique labels
// and are kept in ascending label order at all times.
type edge[E cmp.Ordered, D any] struct {
	label E
	node  *node[E, D]
}

// node is a single trie node: one data value plus its ordered child edges.
// A node owns its children; there are no back references.
type node[E cmp.Ordered, D any] struct {
	data  D
	edges []edge[E, D]
}

// find locates the edge slot for label by binary search. It returns the
// slot index and whether an edge with that label exists; when it does not,
// the index is the sorted insertion point.
func (n *node[E, D]) find(label E) (int, bool) {
	return slices.BinarySearchFunc(n.edges, label, func(e edge[E, D], label E) int {
		return cmp.Compare(e.label, label)
	})
}

// child returns the node reached over label, creating it with zero data
// if no such edge exists yet.
func (n *node[E, D]) child(label E) *node[E, D] {
	i, ok := n.find(label)
	if !ok {
		n.edges = slices.Insert(n.edges, i, edge[E, D]{label: label, node: new(node[E, D])})
	}
	return n.edges[i].node
}

func (n *node[E, D]) isLeaf() bool {
	return len(n.edges) == 0
}

func (n *node[E, D]) clone() *node[E, D] {
	c := &node[E, D]{data: n.data}
	if len(n.edges) > 0 {
		c.edges = make([]edge[E, D], len(n.edges))
		for i := range n.edges {
			c.edges[i] = edge[E, D]{label: n.edges[i].label, node: n.edges[i].node.clone()}
		}
	}
	return c
}

// Trie is a key-value store for keys that are sequences of ordered
// elements, such as strings or feature vectors. Keys sharing a prefix
// share storage for that prefix, and every prefix of an inserted key
// addresses its own data value; the trie makes no distinction between
// keys that were inserted whole and keys that exist only as prefixes.
//
// Data values start out as the zero value of D. The zero Trie is empty
// and ready to use; New is provided for symmetry with the other
// constructors in this package.
//
// A Trie is not safe for concurrent use, and any mutation invalidates
// outstanding cursors over the trie.
type Trie[E cmp.Ordered, D any] struct {
	root node[E, D]
}

// New creates an empty trie.
func New[E cmp.Ordered, D any]() *Trie[E, D] {
	return &Trie[E, D]{}
}

// Insert stores data at key, creating any missing nodes on the way with
// zero data. Existing data at intermediate nodes is left untouched; only
// the data at the final node is overwritten.
func (t *Trie[E, D]) Insert(key []E, data D) {
	n := &t.root
	for _, label := range key {
		n = n.child(label)
	}
	n.data = data
}

// InsertFunc walks key the way Insert does, but replaces the data at
// every node on the path with fn(data), the root and every intermediate
// prefix included, not just the final node. Counting how often each
// prefix occurs in a set of keys is one InsertFunc call per key.
func (t *Trie[E, D]) InsertFunc(key []E, fn func(D) D) {
	n := &t.root
	n.data = fn(n.data)
	for _, label := range key {
		n = n.child(label)
		n.data = fn(n.data)
	}
}

// At returns a pointer to the data stored at key, creating any missing
// nodes with zero data. Unlike Insert it never overwrites existing data.
func (t *Trie[E, D]) At(key []E) *D {
	n := &t.root
	for _, label := range key {
		n = n.child(label)
	}
	return &n.data
}

// Match walks existing edges only and never creates nodes. It reports
// whether the entire key was matched, together with the data at the
// deepest node reached; on a partial match that is the data of the
// longest existing prefix of key. An empty key trivially matches the
// root.
func (t *Trie[E, D]) Match(key []E) (bool, D) {
	n := &t.root
	for _, label := range key {
		i, ok := n.find(label)
		if !ok {
			return false, n.data
		}
		n = n.edges[i].node
	}
	return true, n.data
}

// Data returns a pointer to the data stored at the root, i.e. at the
// empty key.
func (t *Trie[E, D]) Data() *D {
	return &t.root.data
}

// IsLeaf reports whether the trie has no edges at the root, i.e. holds
// no keys beyond the empty one.
func (t *Trie[E, D]) IsLeaf() bool {
	return t.root.isLeaf()
}

// Len returns the number of nodes in the trie, the root excluded. Every
// node addresses exactly one non-empty key, so this is also the number
// of distinct non-empty keys.
func (t *Trie[E, D]) Len() int {
	count := 0
	t.EachElem(func(E, *D) bool {
		count++
		return true
	})
	return count
}

// Clear resets the trie to empty: zero root data and no children.
func (t *Trie[E, D]) Clear() {
	t.root = node[E, D]{}
}

// Clone returns a deep copy of the trie. The node structure is
// duplicated in full; data values are copied by assignment, so a D that
// itself contains references (a map, a slice) is shared between the
// copies.
func (t *Trie[E, D]) Clone() *Trie[E, D] {
	c := &Trie[E, D]{}
	c.root = *t.root.clone()
	return c
}

// EachElem visits every node except the root in depth-first pre-order,
// ascending by label among siblings. The visitor receives the label of
// the edge leading to the node and a pointer to the node's data.
// Returning false prunes: the node's subtree is skipped and traversal
// resumes at the next sibling, or at an ancestor's next sibling.
func (t *Trie[E, D]) EachElem(fn func(label E, data *D) bool) {
	t.root.eachElem(fn)
}

func (n *node[E, D]) eachElem(fn func(label E, data *D) bool) {
	for i := range n.edges {
		child := n.edges[i].node
		if fn(n.edges[i].label, &child.data) {
			child.eachElem(fn)
		}
	}
}

// Each visits every node in depth-first pre-order, the root first with
// the empty key. The visitor receives the full key from the root to the
// node and a pointer to the node's data; the same pruning contract as
// EachElem applies. The key slice is an internal scratch buffer that is
// rewritten as the traversal moves on; clone it if you need it after
// the visitor returns.
func (t *Trie[E, D]) Each(fn func(key []E, data *D) bool) {
	t.root.each(make([]E, 0, 8), fn)
}

func (n *node[E, D]) each(key []E, fn func(key []E, data *D) bool) []E {
	if !fn(key, &n.data) {
		return key
	}
	for i := range n.edges {
		key = append(key, n.edges[i].label)
		key = n.edges[i].node.each(key, fn)
		key = key[:len(key)-1]
	}
	return key
}
