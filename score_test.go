package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	var o Overlap[byte]
	assert.Equal(t, 0, o.Init())
	assert.Equal(t, 1, o.Step(0, 'a', 'a'))
	assert.Equal(t, 0, o.Step(0, 'a', 'b'))
	assert.Equal(t, 3, o.Step(2, 'x', 'x'))
}

func TestCompare(t *testing.T) {
	tr := New[byte, string]()
	tr.Insert([]byte("test"), "a")
	tr.Insert([]byte("tent"), "b")
	tr.Insert([]byte("te"), "c")
	tr.Insert([]byte("testing"), "d")

	got := map[string]int{}
	calls := 0
	Compare(tr, []byte("tast"), Overlap[byte]{}, func(score int, data *string) {
		got[*data] = score
		calls++
	})

	// exactly one callback per length-4 key: "test" and "tent";
	// "te" is too short and "testing" is cut off at depth four,
	// where it shares the "test" node
	assert.Equal(t, 2, calls)
	assert.Equal(t, map[string]int{"a": 3, "b": 2}, got)
}

func TestComparePositional(t *testing.T) {
	tr := New[byte, string]()
	tr.Insert([]byte("abc"), "abc")
	tr.Insert([]byte("bca"), "bca")
	tr.Insert([]byte("cab"), "cab")

	got := map[string]int{}
	Compare(tr, []byte("abc"), Overlap[byte]{}, func(score int, data *string) {
		got[*data] = score
	})

	// same multiset of elements, overlap counts positions only
	assert.Equal(t, map[string]int{"abc": 3, "bca": 0, "cab": 0}, got)
}

func TestCompareScoreBacktracks(t *testing.T) {
	tr := New[byte, string]()
	tr.Insert([]byte("aa"), "aa")
	tr.Insert([]byte("ab"), "ab")
	tr.Insert([]byte("ba"), "ba")

	got := map[string]int{}
	Compare(tr, []byte("aa"), Overlap[byte]{}, func(score int, data *string) {
		got[*data] = score
	})

	// the score of the shared "a" prefix must not leak between siblings
	assert.Equal(t, map[string]int{"aa": 2, "ab": 1, "ba": 1}, got)
}

func TestCompareNoCandidates(t *testing.T) {
	tr := New[byte, int]()
	tr.Insert([]byte("ab"), 1)

	calls := 0
	count := func(int, *int) { calls++ }

	Compare(tr, []byte("abcd"), Overlap[byte]{}, count)
	assert.Equal(t, 0, calls, "pattern longer than every key")

	Compare(tr, nil, Overlap[byte]{}, count)
	assert.Equal(t, 0, calls, "empty pattern")

	Compare(New[byte, int](), []byte("ab"), Overlap[byte]{}, count)
	assert.Equal(t, 0, calls, "empty trie")
}

// weighted is a scorer with a non-int accumulator, exercising the
// contract beyond the provided Overlap.
type weighted struct{}

func (weighted) Init() float64 { return 1 }

func (weighted) Step(acc float64, pattern, stored byte) float64 {
	if pattern == stored {
		return acc * 2
	}
	return acc
}

func TestCompareCustomScorer(t *testing.T) {
	tr := New[byte, string]()
	tr.Insert([]byte("test"), "test")
	tr.Insert([]byte("tent"), "tent")

	got := map[string]float64{}
	Compare[byte, string, float64](tr, []byte("tast"), weighted{}, func(score float64, data *string) {
		got[*data] = score
	})

	assert.Equal(t, map[string]float64{"test": 8, "tent": 4}, got)
}
