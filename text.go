package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text is a rune-keyed trie for string keys. Words are canonicalised
// before they touch the underlying trie: by default diacritics are
// stripped (so "Jurg" and "Jürg" address the same data) and input is
// lower-cased. Both behaviours can be switched off.
type Text[D any] struct {
	trie          Trie[rune, D]
	normalised    bool
	caseSensitive bool
}

// NewText creates an empty text trie. By default normalisation is on
// and matching is case insensitive.
func NewText[D any]() *Text[D] {
	t := new(Text[D])
	t.WithNormalisation()
	t.CaseInsensitive()
	return t
}

// WithNormalisation sets the Text to strip combining marks from words.
func (t *Text[D]) WithNormalisation() *Text[D] {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Text to store words as given.
func (t *Text[D]) WithoutNormalisation() *Text[D] {
	t.normalised = false
	return t
}

// CaseSensitive sets the Text to treat case as significant.
func (t *Text[D]) CaseSensitive() *Text[D] {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Text to lower-case words before storing and
// matching.
func (t *Text[D]) CaseInsensitive() *Text[D] {
	t.caseSensitive = false
	return t
}

// canonical applies the configured normalisation and case folding and
// splits the word into the rune sequence used as the trie key.
func (t *Text[D]) canonical(word string) []rune {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !t.caseSensitive {
		word = strings.ToLower(word)
	}
	return []rune(word)
}

// Insert stores data at word.
func (t *Text[D]) Insert(word string, data D) {
	t.trie.Insert(t.canonical(word), data)
}

// InsertFunc replaces the data at every prefix of word, the empty
// prefix included, with fn(data).
func (t *Text[D]) InsertFunc(word string, fn func(D) D) {
	t.trie.InsertFunc(t.canonical(word), fn)
}

// At returns a pointer to the data stored at word, creating missing
// nodes with zero data.
func (t *Text[D]) At(word string) *D {
	return t.trie.At(t.canonical(word))
}

// Match reports whether the whole word is present and returns the data
// of the deepest prefix reached.
func (t *Text[D]) Match(word string) (bool, D) {
	return t.trie.Match(t.canonical(word))
}

// Trie exposes the underlying rune trie for traversal, cursors and
// comparisons. Keys obtained from it are canonicalised rune sequences,
// not the original input.
func (t *Text[D]) Trie() *Trie[rune, D] {
	return &t.trie
}
