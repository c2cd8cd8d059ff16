package trie

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// Sprint renders the trie as an indented ASCII tree, one branch per
// edge, labels and data formatted with %v. It consumes only the public
// Each enumeration, so it works without access to node internals and
// any structure offering the same enumeration could be rendered the
// same way. Intended for debugging; not part of the core contract.
func Sprint[E cmp.Ordered, D any](t *Trie[E, D]) string {
	var root treeprint.Tree
	branches := make([]treeprint.Tree, 0, 8)
	t.Each(func(key []E, data *D) bool {
		if len(key) == 0 {
			root = treeprint.NewWithRoot(fmt.Sprintf("%v", *data))
			branches = append(branches[:0], root)
			return true
		}
		depth := len(key)
		b := branches[depth-1].AddBranch(fmt.Sprintf("%v %v", key[depth-1], *data))
		branches = append(branches[:depth], b)
		return true
	})
	return root.String()
}
