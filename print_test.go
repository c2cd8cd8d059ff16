package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprint(t *testing.T) {
	tr := New[int, int]()
	tr.Insert([]int{1, 2}, 5)
	tr.Insert([]int{1, 3}, 7)
	tr.Insert([]int{4}, 9)

	out := Sprint(tr)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 5, out)
	assert.Equal(t, "0", lines[0], "root data on the first line")
	assert.Contains(t, out, "1 0")
	assert.Contains(t, out, "2 5")
	assert.Contains(t, out, "3 7")
	assert.Contains(t, out, "4 9")

	// children are indented below their parent, in ascending label order
	assert.Less(t, strings.Index(out, "1 0"), strings.Index(out, "2 5"))
	assert.Less(t, strings.Index(out, "2 5"), strings.Index(out, "3 7"))
	assert.Less(t, strings.Index(out, "3 7"), strings.Index(out, "4 9"))
}

func TestSprintEmpty(t *testing.T) {
	tr := New[byte, int]()
	assert.Equal(t, "0", strings.TrimSpace(Sprint(tr)))
}
