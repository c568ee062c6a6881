package fingerprint

import (
	"testing"

	"github.com/crossplay/backend/pkg/grid"
)

func buildSample() *grid.Grid {
	g := grid.New(10)
	g.PlaceWord("АТОМ", "частица", "физика", 5, 0, grid.H)
	g.PlaceWord("ТЕСТ", "проверка", "экзамен", 5, 1, grid.V)
	return g
}

func TestOfIsDeterministic(t *testing.T) {
	a := Of(buildSample())
	b := Of(buildSample())
	if a != b {
		t.Errorf("Of() not deterministic: %q != %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("Of() length = %d, want 16", len(a))
	}
}

func TestOfDependsOnCommitOrder(t *testing.T) {
	// The reference implementation hashes the words list in placement
	// (commit) order, never re-sorted by position — so two grids with
	// the same final layout but different commit order must produce
	// different fingerprints, matching json.dumps(..., sort_keys=True)
	// semantics (sort_keys reorders object keys, not list elements).
	g1 := grid.New(10)
	g1.PlaceWord("АТОМ", "", "", 5, 0, grid.H)
	g1.PlaceWord("ТЕСТ", "", "", 5, 1, grid.V)

	g2 := grid.New(10)
	g2.PlaceWord("ТЕСТ", "", "", 5, 1, grid.V)
	g2.PlaceWord("АТОМ", "", "", 5, 0, grid.H)

	if Of(g1) == Of(g2) {
		t.Errorf("Of() should depend on commit order, got equal fingerprints %q", Of(g1))
	}
}

func TestOfChangesWithContent(t *testing.T) {
	base := Of(buildSample())

	g := grid.New(10)
	g.PlaceWord("АТОМ", "", "", 5, 0, grid.H)
	changed := Of(g)

	if base == changed {
		t.Error("expected different fingerprints for different grid contents")
	}
}

func TestOfClueAndHintDoNotAffectFingerprint(t *testing.T) {
	g1 := grid.New(10)
	g1.PlaceWord("АТОМ", "clue one", "hint one", 5, 0, grid.H)

	g2 := grid.New(10)
	g2.PlaceWord("АТОМ", "clue two", "hint two", 5, 0, grid.H)

	if Of(g1) != Of(g2) {
		t.Error("fingerprint should depend only on grid layout, not clue/hint text")
	}
}
