package trie

import "cmp"

// Scorer accumulates a similarity score between two equal-length
// sequences one element pair at a time. Init gives the starting score;
// Step folds one pattern element and one stored element into the
// accumulated score.
type Scorer[E, S any] interface {
	Init() S
	Step(acc S, pattern, stored E) S
}

// Overlap scores two equal-length sequences by the number of positions
// at which they hold equal elements.
type Overlap[E comparable] struct{}

func (Overlap[E]) Init() int { return 0 }

func (Overlap[E]) Step(acc int, pattern, stored E) int {
	if pattern == stored {
		return acc + 1
	}
	return acc
}

// Compare scores pattern against every key in the trie of the same
// length. It walks the trie in pruning pre-order, consuming one pattern
// element per level of depth and folding it into the accumulated score
// with the edge label at that level. When the pattern is fully consumed
// the result callback fires with the score and the data at the node
// reached, exactly once per stored key of the pattern's length, and the
// walk does not descend below that node. Keys shorter than the pattern
// never fire; paths are abandoned the moment depth runs out in either
// direction, so the cost is bounded by the number of paths no longer
// than the pattern.
//
// An empty pattern produces no candidates.
func Compare[E cmp.Ordered, D, S any](t *Trie[E, D], pattern []E, scorer Scorer[E, S], result func(score S, data *D)) {
	if len(pattern) == 0 {
		return
	}
	compareNode(&t.root, pattern, scorer.Init(), scorer, result)
}

// compareNode recurses with the score so far as an argument, so
// backtracking restores the score of the shared prefix for free.
func compareNode[E cmp.Ordered, D, S any](n *node[E, D], pattern []E, acc S, scorer Scorer[E, S], result func(S, *D)) {
	for i := range n.edges {
		child := n.edges[i].node
		score := scorer.Step(acc, pattern[0], n.edges[i].label)
		if len(pattern) == 1 {
			result(score, &child.data)
			continue
		}
		compareNode(child, pattern[1:], score, scorer, result)
	}
}
