// Package wordlist holds dictionary entries and the filtering/ranking
// operations the placer and generator run over them before placement.
package wordlist

import (
	"sort"

	"github.com/crossplay/backend/pkg/letters"
)

// Entry is one dictionary record: a word plus the clue/hint text shown
// to a solver.
type Entry struct {
	Word string
	Clue string
	Hint string
}

// Normalize validates and uppercases e.Word in place, returning an error
// naming the offending entry otherwise.
func (e *Entry) Normalize() error {
	upper, err := letters.Normalize(e.Word)
	if err != nil {
		return err
	}
	if err := letters.ValidateLength(upper); err != nil {
		return err
	}
	e.Word = upper
	return nil
}

// FilterByLength keeps only entries whose word length is within
// [min, max], inclusive.
func FilterByLength(entries []Entry, min, max int) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		n := len([]rune(e.Word))
		if n >= min && n <= max {
			out = append(out, e)
		}
	}
	return out
}

// ExcludeWords drops any entry whose word appears in excluded (already
// uppercase, as produced by the caller).
func ExcludeWords(entries []Entry, excluded map[string]bool) []Entry {
	if len(excluded) == 0 {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !excluded[e.Word] {
			out = append(out, e)
		}
	}
	return out
}

// Rank sorts entries by letters.Score descending, a stable sort so ties
// preserve their input order. The input slice is not modified.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return letters.Score(out[i].Word) > letters.Score(out[j].Word)
	})
	return out
}
