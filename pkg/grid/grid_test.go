package grid

import "testing"

func TestPlaceWordHorizontal(t *testing.T) {
	g := New(10)

	if !g.PlaceWord("АТОМ", "clue", "hint", 5, 0, H) {
		t.Fatal("expected АТОМ to place")
	}

	want := []rune("АТОМ")
	for i, ch := range want {
		if got := g.At(5, i); got != ch {
			t.Errorf("cell (5,%d) = %q, want %q", i, got, ch)
		}
	}

	if density := g.FillDensity(); density != 0.04 {
		t.Errorf("FillDensity() = %v, want 0.04", density)
	}
}

func TestPlaceWordValidCrossing(t *testing.T) {
	g := New(10)
	if !g.PlaceWord("АТОМ", "", "", 5, 0, H) {
		t.Fatal("setup: АТОМ should place")
	}

	if !g.PlaceWord("ТЕСТ", "", "", 5, 1, V) {
		t.Fatal("expected ТЕСТ to place as a valid crossing")
	}

	if got := g.At(5, 1); got != 'Т' {
		t.Errorf("cell (5,1) = %q, want Т", got)
	}
	if len(g.Words()) != 2 {
		t.Errorf("expected 2 placed words, got %d", len(g.Words()))
	}
}

func TestCanPlaceConflictingLetters(t *testing.T) {
	g := New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, H)

	if g.CanPlace("МАМА", 5, 0, H) {
		t.Error("expected МАМА to conflict with АТОМ at (5,0)")
	}
}

func TestCanPlaceIllegalParallelTouch(t *testing.T) {
	g := New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, H)

	if g.CanPlace("ДОМ", 6, 0, H) {
		t.Error("expected ДОМ at row 6 to be rejected by the parallel-adjacency rule")
	}
}

func TestCropNormalizesOrigins(t *testing.T) {
	g := New(10)
	g.PlaceWord("ТЕСТ", "", "", 5, 5, H)

	h, w := g.CropEmptyEdges()
	if h != 1 || w != 4 {
		t.Fatalf("CropEmptyEdges() = (%d, %d), want (1, 4)", h, w)
	}

	words := g.Words()
	if len(words) != 1 || words[0].Row != 0 || words[0].Col != 0 {
		t.Fatalf("expected cropped origin (0,0), got %+v", words)
	}
}

func TestCropEmptyGrid(t *testing.T) {
	g := New(5)
	h, w := g.CropEmptyEdges()
	if h != 0 || w != 0 {
		t.Errorf("CropEmptyEdges() on empty grid = (%d, %d), want (0, 0)", h, w)
	}
	if g.Height != 5 || g.Width != 5 {
		t.Errorf("empty grid should be left untouched, got %dx%d", g.Height, g.Width)
	}
}

func TestCropIdempotent(t *testing.T) {
	g := New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, H)
	g.CropEmptyEdges()
	h1, w1 := g.Height, g.Width
	h2, w2 := g.CropEmptyEdges()
	if h2 != h1 || w2 != w1 {
		t.Errorf("second crop changed dimensions: (%d,%d) -> (%d,%d)", h1, w1, h2, w2)
	}
}

func TestIntersectionsFindsCrossings(t *testing.T) {
	g := New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, H)

	candidates := g.Intersections("ТЕСТ")
	if len(candidates) == 0 {
		t.Fatal("expected at least one intersection candidate for ТЕСТ")
	}
	for _, c := range candidates {
		if c.Crossings < 1 {
			t.Errorf("candidate %+v has zero crossings", c)
		}
	}
}

func TestPlaceWordMutatesOnlyOnSuccess(t *testing.T) {
	g := New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, H)

	before := g.ToArray()
	if g.PlaceWord("МАМА", "", "", 5, 0, H) {
		t.Fatal("expected conflicting placement to fail")
	}
	after := g.ToArray()

	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Fatalf("grid mutated despite failed placement at (%d,%d)", r, c)
			}
		}
	}
}
