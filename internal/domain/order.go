package domain

import "sort"

// Less reports whether a sorts before b under the total order of
// section 4.1.
func Less(a, b Sentence) bool { return a.Compare(b) < 0 }

// SortSentences sorts a slice of sentences in place by the canonical
// total order, used to normalize rule output wherever order matters
// (e.g. deterministic tree layout, section 4.1).
func SortSentences(ss []Sentence) {
	sort.Slice(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}
