package trie

import (
	"cmp"
	"slices"
)

// Tally counts occurrences per label. It serves both as the data stored
// at each node of a classifier's trie, accumulated over training, and
// as the aggregate produced during classification.
type Tally[L cmp.Ordered] map[L]int

// Classifier is a k-nearest-neighbour classifier over a trie keyed by
// feature sequences. Each node holds the tally of labels seen for that
// feature sequence; classification compares a query against all stored
// sequences of the same length with overlap scoring and takes a
// majority vote over the best tallies.
//
// The zero Classifier is untrained and ready to use.
type Classifier[E cmp.Ordered, L cmp.Ordered] struct {
	trie Trie[E, Tally[L]]
}

// NewClassifier creates an untrained classifier.
func NewClassifier[E cmp.Ordered, L cmp.Ordered]() *Classifier[E, L] {
	return &Classifier[E, L]{}
}

// Learn records one observation of label for the given feature
// sequence.
func (c *Classifier[E, L]) Learn(features []E, label L) {
	tally := c.trie.At(features)
	if *tally == nil {
		*tally = make(Tally[L])
	}
	(*tally)[label]++
}

// Classify returns the majority label of the single best-scoring stored
// sequence of the same length as features. Only a strictly greater
// score replaces the held best, so the first candidate at the top score
// wins; candidates arrive in ascending key order. With no training
// data, or when no stored sequence has the query's length, the zero
// label is returned.
func (c *Classifier[E, L]) Classify(features []E) L {
	best := 0
	var labels Tally[L]
	Compare(&c.trie, features, Overlap[E]{}, func(score int, tally *Tally[L]) {
		if score > best {
			best = score
			labels = *tally
		}
	})
	return majority(labels)
}

// ClassifyK returns the majority label over the k best-scoring stored
// sequences of the same length as features. The retained tallies are
// summed per label before the vote. A candidate is admitted while fewer
// than k are held, or when it scores strictly above the current
// minimum, which is then evicted; among equal scores the oldest entry
// is evicted first. ClassifyK with k of one behaves like Classify.
func (c *Classifier[E, L]) ClassifyK(features []E, k int) L {
	if k < 1 {
		var zero L
		return zero
	}
	type scored struct {
		score int
		tally Tally[L]
	}
	best := make([]scored, 0, k)
	// insertion point after existing entries of equal score keeps the
	// list ascending and the eviction order stable
	rank := func(e scored, score int) int {
		if e.score <= score {
			return -1
		}
		return 1
	}
	Compare(&c.trie, features, Overlap[E]{}, func(score int, tally *Tally[L]) {
		if len(best) < k {
			i, _ := slices.BinarySearchFunc(best, score, rank)
			best = slices.Insert(best, i, scored{score, *tally})
			return
		}
		if score > best[0].score {
			i, _ := slices.BinarySearchFunc(best, score, rank)
			best = slices.Insert(best, i, scored{score, *tally})
			best = best[1:]
		}
	})
	total := make(Tally[L])
	for _, s := range best {
		for label, count := range s.tally {
			total[label] += count
		}
	}
	return majority(total)
}

// Len returns the number of distinct feature sequences the classifier
// has been trained on.
func (c *Classifier[E, L]) Len() int {
	count := 0
	c.trie.EachElem(func(_ E, tally *Tally[L]) bool {
		if len(*tally) > 0 {
			count++
		}
		return true
	})
	return count
}

// String renders the classifier's trie for debugging.
func (c *Classifier[E, L]) String() string {
	return Sprint(&c.trie)
}

// majority returns the label with the strictly highest count. Labels
// are scanned in ascending order and only a strictly higher count
// replaces the held best, so ties resolve to the smallest label. An
// empty tally yields the zero label.
func majority[L cmp.Ordered](tally Tally[L]) L {
	labels := make([]L, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	var best L
	count := 0
	for _, label := range labels {
		if tally[label] > count {
			best, count = label, tally[label]
		}
	}
	return best
}
