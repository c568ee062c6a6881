// Package placer implements the word-by-word placement algorithm: seed
// the grid with a long word, then repeatedly find the best intersecting
// position for each remaining candidate in turn.
package placer

import (
	"math/rand"
	"sort"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

// initialCandidatePoolSize is how many of the longest candidates the
// first placement is randomly chosen from.
const initialCandidatePoolSize = 5

// positionCandidatePoolSize is how many of the best-scoring legal
// positions a placement is randomly chosen from.
const positionCandidatePoolSize = 3

// Placer places words onto a single Grid, tracking which candidate
// words it has already committed.
type Placer struct {
	grid *grid.Grid
	rng  *rand.Rand
	used map[string]bool
}

// New wraps g for placement, drawing randomness from rng.
func New(g *grid.Grid, rng *rand.Rand) *Placer {
	return &Placer{grid: g, rng: rng, used: make(map[string]bool)}
}

// PlaceInitial places the seed word: one entry picked at random from
// the initialCandidatePoolSize longest entries, centered horizontally.
// It reports whether placement succeeded.
func (p *Placer) PlaceInitial(entries []wordlist.Entry) bool {
	if len(entries) == 0 {
		return false
	}

	sorted := make([]wordlist.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i].Word)) > len([]rune(sorted[j].Word))
	})

	poolSize := initialCandidatePoolSize
	if poolSize > len(sorted) {
		poolSize = len(sorted)
	}
	chosen := sorted[p.rng.Intn(poolSize)]

	word := []rune(chosen.Word)
	length := len(word)
	size := p.grid.Height

	row := size / 2
	col := (size - length) / 2
	if col < 0 {
		col = 0
	}
	if col+length > size {
		return false
	}

	if !p.grid.PlaceWord(chosen.Word, chosen.Clue, chosen.Hint, row, col, grid.H) {
		return false
	}
	p.used[chosen.Word] = true
	return true
}

// PlaceRemaining places words crossing the already-committed layout,
// trying each unused entry once in order of decreasing length, until
// the grid holds targetCount words, maxAttempts failures have occurred
// since the last successful placement, or every entry has been tried.
// It returns the total number of placed words (including the seed).
func (p *Placer) PlaceRemaining(entries []wordlist.Entry, targetCount, maxAttempts int) int {
	var available []wordlist.Entry
	for _, e := range entries {
		if !p.used[e.Word] {
			available = append(available, e)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return len([]rune(available[i].Word)) > len([]rune(available[j].Word))
	})

	attempts := 0
	wordIndex := 0

	for len(p.grid.Words()) < targetCount && attempts < maxAttempts && wordIndex < len(available) {
		entry := available[wordIndex]

		if p.used[entry.Word] {
			wordIndex++
			continue
		}

		best, ok := p.findBestPosition(entry.Word)
		if !ok {
			wordIndex++
			attempts++
			continue
		}

		if p.grid.PlaceWord(entry.Word, entry.Clue, entry.Hint, best.Row, best.Col, best.Direction) {
			p.used[entry.Word] = true
			wordIndex++
			attempts = 0
		} else {
			attempts++
		}
	}

	return len(p.grid.Words())
}

// findBestPosition ranks the grid's legal intersecting candidates for
// word by crossing count and proximity to the grid's center, then
// returns a random pick among the top positionCandidatePoolSize.
func (p *Placer) findBestPosition(word string) (grid.Candidate, bool) {
	candidates := p.grid.Intersections(word)
	if len(candidates) == 0 {
		return grid.Candidate{}, false
	}

	center := p.grid.Height / 2

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidateScore(candidates[i], center) > candidateScore(candidates[j], center)
	})

	poolSize := positionCandidatePoolSize
	if poolSize > len(candidates) {
		poolSize = len(candidates)
	}

	return candidates[p.rng.Intn(poolSize)], true
}

func candidateScore(c grid.Candidate, center int) int {
	distance := abs(c.Row-center) + abs(c.Col-center)
	return c.Crossings*10 - distance
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// UsedWords returns the set of words already committed by this placer.
func (p *Placer) UsedWords() map[string]bool {
	out := make(map[string]bool, len(p.used))
	for w := range p.used {
		out[w] = true
	}
	return out
}
