package placer

import (
	"math/rand"
	"testing"

	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/wordlist"
)

func sampleEntries() []wordlist.Entry {
	return []wordlist.Entry{
		{Word: "КОСМОНАВТ", Clue: "", Hint: ""},
		{Word: "РАКЕТА", Clue: "", Hint: ""},
		{Word: "ПЛАНЕТА", Clue: "", Hint: ""},
		{Word: "ЗВЕЗДА", Clue: "", Hint: ""},
		{Word: "ОРБИТА", Clue: "", Hint: ""},
		{Word: "АТОМ", Clue: "", Hint: ""},
		{Word: "ЛУНА", Clue: "", Hint: ""},
		{Word: "МАРС", Clue: "", Hint: ""},
		{Word: "ВЕНЕРА", Clue: "", Hint: ""},
		{Word: "КОМЕТА", Clue: "", Hint: ""},
		{Word: "ГАЛАКТИКА", Clue: "", Hint: ""},
		{Word: "СПУТНИК", Clue: "", Hint: ""},
	}
}

func TestPlaceInitialPicksAndCenters(t *testing.T) {
	g := grid.New(10)
	p := New(g, rand.New(rand.NewSource(1)))

	if !p.PlaceInitial(sampleEntries()) {
		t.Fatal("expected PlaceInitial to succeed")
	}
	if len(g.Words()) != 1 {
		t.Fatalf("expected 1 placed word, got %d", len(g.Words()))
	}
	if g.Words()[0].Row != 5 {
		t.Errorf("expected seed word centered at row 5, got %d", g.Words()[0].Row)
	}
}

func TestPlaceInitialEmptyList(t *testing.T) {
	g := grid.New(10)
	p := New(g, rand.New(rand.NewSource(1)))
	if p.PlaceInitial(nil) {
		t.Error("expected PlaceInitial to fail on empty entry list")
	}
}

func TestPlaceRemainingReachesTarget(t *testing.T) {
	g := grid.New(14)
	p := New(g, rand.New(rand.NewSource(42)))

	entries := sampleEntries()
	if !p.PlaceInitial(entries) {
		t.Fatal("setup: PlaceInitial should succeed")
	}

	count := p.PlaceRemaining(entries, 8, 500)
	if count != 8 {
		t.Errorf("expected PlaceRemaining to reach the target of 8 words, got total %d", count)
	}
	if count != len(g.Words()) {
		t.Errorf("returned count %d does not match grid word count %d", count, len(g.Words()))
	}
}

func TestPlaceRemainingSkipsUsedWords(t *testing.T) {
	g := grid.New(10)
	p := New(g, rand.New(rand.NewSource(7)))

	entries := sampleEntries()[:3]
	p.PlaceInitial(entries)

	before := len(p.UsedWords())
	p.PlaceRemaining(entries, 10, 200)

	used := p.UsedWords()
	seen := make(map[string]int)
	for _, w := range g.Words() {
		seen[w.Word]++
	}
	for w, n := range seen {
		if n > 1 {
			t.Errorf("word %q placed more than once", w)
		}
	}
	if len(used) < before {
		t.Error("used word set should never shrink")
	}
}

func TestPlaceRemainingStopsWhenNoCandidatesRemain(t *testing.T) {
	g := grid.New(10)
	p := New(g, rand.New(rand.NewSource(3)))

	// The only entry becomes the seed, so nothing is left to place and
	// PlaceRemaining returns without looping.
	entries := []wordlist.Entry{{Word: "АТОМ"}}
	p.PlaceInitial(entries)
	count := p.PlaceRemaining(entries, 50, 10)
	if count != 1 {
		t.Errorf("expected placement to stay at 1 (seed only), got %d", count)
	}
}
