// Package validator checks a filled Grid against the structural rules
// a legal crossword must satisfy, and computes summary statistics.
package validator

import (
	"fmt"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/letters"
)

// Thresholds a generated crossword must meet.
const (
	MinWords       = 8
	MinGridSize    = 6
	MinFillDensity = 0.30
	MaxFillDensity = 0.70
)

type cell struct{ row, col int }

// ValidateCrossword checks word count, intersection correctness,
// connectivity, fill density, and duplicate/length constraints. It
// returns whether the grid is valid and the list of violations found.
func ValidateCrossword(g *grid.Grid) (bool, []string) {
	var errors []string
	words := g.Words()

	if len(words) < MinWords {
		errors = append(errors, fmt.Sprintf("too few words: %d < %d", len(words), MinWords))
	}

	errors = append(errors, CheckIntersections(g, words)...)

	if !CheckAllWordsConnected(words) {
		errors = append(errors, "not all words are connected to each other")
	}

	density := g.FillDensity()
	if density < MinFillDensity {
		errors = append(errors, fmt.Sprintf("fill density too low: %.2f < %.2f", density, MinFillDensity))
	}
	if density > MaxFillDensity {
		errors = append(errors, fmt.Sprintf("fill density too high: %.2f > %.2f", density, MaxFillDensity))
	}

	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w.Word] {
			errors = append(errors, fmt.Sprintf("duplicate word: %s", w.Word))
		}
		seen[w.Word] = true
	}

	for _, w := range words {
		if w.Length() < letters.MinWordLength {
			errors = append(errors, fmt.Sprintf("word too short: %s", w.Word))
		}
	}

	return len(errors) == 0, errors
}

// CheckIntersections re-derives every placed word's cells from the
// committed grid array and flags any mismatch or out-of-bounds cell.
func CheckIntersections(g *grid.Grid, words []grid.PlacedWord) []string {
	var errors []string
	array := g.ToArray()
	if len(array) == 0 {
		return errors
	}
	height := len(array)
	width := len(array[0])

	for _, w := range words {
		runes := []rune(w.Word)
		for i, expected := range runes {
			row, col := w.Row, w.Col
			if w.Direction == grid.H {
				col += i
			} else {
				row += i
			}

			if row < 0 || row >= height || col < 0 || col >= width {
				errors = append(errors, fmt.Sprintf("word %s runs out of grid bounds", w.Word))
				continue
			}

			actual := array[row][col]
			if actual == "" || []rune(actual)[0] != expected {
				errors = append(errors, fmt.Sprintf(
					"letter mismatch at (%d, %d): expected %q, found %q", row, col, expected, actual))
			}
		}
	}
	return errors
}

// CheckAllWordsConnected reports whether every word shares at least one
// cell with some other word, transitively, via a breadth-first search
// over the "shares a cell" graph. A single word (or none) is trivially
// connected.
func CheckAllWordsConnected(words []grid.PlacedWord) bool {
	if len(words) <= 1 {
		return true
	}

	cellsOf := make([]map[cell]bool, len(words))
	for i, w := range words {
		cellsOf[i] = wordCells(w)
	}

	adjacency := make([][]int, len(words))
	for i := range words {
		for j := i + 1; j < len(words); j++ {
			if intersects(cellsOf[i], cellsOf[j]) {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	visited := make([]bool, len(words))
	queue := []int{0}
	visited[0] = true
	count := 1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range adjacency[current] {
			if !visited[n] {
				visited[n] = true
				count++
				queue = append(queue, n)
			}
		}
	}

	return count == len(words)
}

func wordCells(w grid.PlacedWord) map[cell]bool {
	cells := make(map[cell]bool, w.Length())
	for i := 0; i < w.Length(); i++ {
		if w.Direction == grid.H {
			cells[cell{w.Row, w.Col + i}] = true
		} else {
			cells[cell{w.Row + i, w.Col}] = true
		}
	}
	return cells
}

func intersects(a, b map[cell]bool) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for c := range small {
		if big[c] {
			return true
		}
	}
	return false
}

// CheckNoAdjacentParallel reports whether the grid contains no two
// same-direction words running directly alongside each other with
// overlapping extent — the illegal "parallel touch" the grid's
// placement predicate is meant to prevent at commit time.
func CheckNoAdjacentParallel(words []grid.PlacedWord) bool {
	for i := range words {
		for j := i + 1; j < len(words); j++ {
			if words[i].Direction != words[j].Direction {
				continue
			}
			if areParallelAdjacent(words[i], words[j]) {
				return false
			}
		}
	}
	return true
}

func areParallelAdjacent(a, b grid.PlacedWord) bool {
	if a.Direction == grid.H {
		if abs(a.Row-b.Row) != 1 {
			return false
		}
		return rangesOverlap(a.Col, a.Col+a.Length(), b.Col, b.Col+b.Length())
	}
	if abs(a.Col-b.Col) != 1 {
		return false
	}
	return rangesOverlap(a.Row, a.Row+a.Length(), b.Row, b.Row+b.Length())
}

func rangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ValidateWordEntry checks a dictionary entry's word: present, within
// length bounds, and entirely within the closed Cyrillic alphabet.
func ValidateWordEntry(word string) (bool, []string) {
	var errors []string

	if word == "" {
		errors = append(errors, "missing word")
		return false, errors
	}

	n := len([]rune(word))
	if n < letters.MinWordLength {
		errors = append(errors, fmt.Sprintf("word too short: %s", word))
	}
	if n > letters.MaxWordLength {
		errors = append(errors, fmt.Sprintf("word too long: %s", word))
	}

	if _, err := letters.Normalize(word); err != nil {
		errors = append(errors, fmt.Sprintf("word contains invalid characters: %s", word))
	}

	return len(errors) == 0, errors
}

// Statistics summarizes a filled grid for reporting and for the
// generation metadata attached to a result.
type Statistics struct {
	WordCount       int
	HorizontalCount int
	VerticalCount   int
	GridHeight      int
	GridWidth       int
	FillDensity     float64
	AvgWordLength   float64
	MinWordLength   int
	MaxWordLength   int
}

// GetStatistics computes Statistics for g.
func GetStatistics(g *grid.Grid) Statistics {
	words := g.Words()
	array := g.ToArray()

	stats := Statistics{
		WordCount:   len(words),
		FillDensity: g.FillDensity(),
	}
	if len(array) > 0 {
		stats.GridHeight = len(array)
		stats.GridWidth = len(array[0])
	}

	if len(words) == 0 {
		return stats
	}

	total := 0
	stats.MinWordLength = words[0].Length()
	for _, w := range words {
		if w.Direction == grid.H {
			stats.HorizontalCount++
		} else {
			stats.VerticalCount++
		}
		l := w.Length()
		total += l
		if l < stats.MinWordLength {
			stats.MinWordLength = l
		}
		if l > stats.MaxWordLength {
			stats.MaxWordLength = l
		}
	}
	stats.AvgWordLength = float64(total) / float64(len(words))

	return stats
}
