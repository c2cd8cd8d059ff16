package trie

import (
	"cmp"
	"slices"
)

// position addresses one edge slot within the node that owns it.
type position[E cmp.Ordered, D any] struct {
	owner *node[E, D]
	slot  int
}

// Cursor is a bidirectional depth-first pre-order cursor over a Trie.
// It holds a stack of edge positions from the root down to the current
// node; no parent links exist in the trie itself.
//
// A cursor is in one of three states: before-begin (empty stack,
// addressing the root's data under the empty key), valid (stack depth
// one or more), or end (a single position one past the root's last
// edge). Calling Key or Data on an end cursor is a contract violation
// and panics. Cursors are tied to one trie instance and do not survive
// mutation of that trie: inserting may reallocate edge slices, after
// which all outstanding cursors are invalid.
type Cursor[E cmp.Ordered, D any] struct {
	trie *Trie[E, D]
	path []position[E, D]
}

// Begin returns a cursor in the before-begin state. Its data is the
// root's data; the first Next moves to the smallest non-empty key.
func (t *Trie[E, D]) Begin() *Cursor[E, D] {
	return &Cursor[E, D]{trie: t}
}

// End returns the end sentinel cursor.
func (t *Trie[E, D]) End() *Cursor[E, D] {
	return &Cursor[E, D]{
		trie: t,
		path: []position[E, D]{{&t.root, len(t.root.edges)}},
	}
}

// Find returns a cursor positioned at key, the end sentinel if no node
// for key exists, or the begin cursor for the empty key (whose data is
// the root's).
func (t *Trie[E, D]) Find(key []E) *Cursor[E, D] {
	c := &Cursor[E, D]{trie: t}
	n := &t.root
	for _, label := range key {
		i, ok := n.find(label)
		if !ok {
			return t.End()
		}
		c.path = append(c.path, position[E, D]{n, i})
		n = n.edges[i].node
	}
	return c
}

// AtBegin reports whether the cursor is in the before-begin state.
func (c *Cursor[E, D]) AtBegin() bool {
	return len(c.path) == 0
}

// AtEnd reports whether the cursor is the end sentinel.
func (c *Cursor[E, D]) AtEnd() bool {
	return len(c.path) == 1 && c.path[0].slot == len(c.trie.root.edges)
}

// Depth returns the depth of the current node; the root has depth zero.
func (c *Cursor[E, D]) Depth() int {
	return len(c.path)
}

func (c *Cursor[E, D]) top() position[E, D] {
	return c.path[len(c.path)-1]
}

func (c *Cursor[E, D]) pop() position[E, D] {
	p := c.top()
	c.path = c.path[:len(c.path)-1]
	return p
}

// current is the node addressed by the top of the stack.
func (c *Cursor[E, D]) current() *node[E, D] {
	p := c.top()
	return p.owner.edges[p.slot].node
}

// Next advances to the pre-order successor and returns the cursor.
// From before-begin it moves to the root's first edge; at end it stays
// put. Otherwise it descends into the first child if one exists, else
// it backtracks, advancing a popped position and popping again while
// that position has run past its owner's last edge. Running past the
// root's last edge reaches the end sentinel.
func (c *Cursor[E, D]) Next() *Cursor[E, D] {
	if c.AtBegin() {
		c.path = append(c.path, position[E, D]{&c.trie.root, 0})
		return c
	}
	if c.AtEnd() {
		return c
	}
	if n := c.current(); !n.isLeaf() {
		c.path = append(c.path, position[E, D]{n, 0})
		return c
	}
	p := c.pop()
	p.slot++
	for len(c.path) > 0 && p.slot == len(p.owner.edges) {
		p = c.pop()
		p.slot++
	}
	c.path = append(c.path, p)
	return c
}

// Prev steps to the pre-order predecessor and returns the cursor. From
// end it moves to the last-visited key, which is the right-most leaf;
// at begin it stays put. A node's predecessor is its previous sibling's
// deepest last descendant, or its parent when it is the first sibling.
func (c *Cursor[E, D]) Prev() *Cursor[E, D] {
	if c.AtBegin() {
		return c
	}
	p := c.pop()
	if p.slot == 0 {
		return c
	}
	p.slot--
	c.path = append(c.path, p)
	for n := c.current(); !n.isLeaf(); n = c.current() {
		c.path = append(c.path, position[E, D]{n, len(n.edges) - 1})
	}
	return c
}

// Key reconstructs the key of the current node from the position stack.
// At begin the key is empty.
func (c *Cursor[E, D]) Key() []E {
	key := make([]E, len(c.path))
	for i, p := range c.path {
		key[i] = p.owner.edges[p.slot].label
	}
	return key
}

// Data returns a pointer to the data at the current node, or to the
// root's data when the cursor is at begin.
func (c *Cursor[E, D]) Data() *D {
	if c.AtBegin() {
		return &c.trie.root.data
	}
	return &c.current().data
}

// Equal reports whether two cursors address the same position in the
// same trie instance. Equality compares the position stacks themselves,
// not the reconstructed keys.
func (c *Cursor[E, D]) Equal(o *Cursor[E, D]) bool {
	return c.trie == o.trie && slices.Equal(c.path, o.path)
}
