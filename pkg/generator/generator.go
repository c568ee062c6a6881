// Package generator orchestrates the grid, wordlist, placer, validator
// and fingerprint packages into the top-level "build one crossword"
// operation, plus the dictionary-wide reporting operations the API and
// CLI layers expose to callers.
package generator

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/crossplay/backend/pkg/fingerprint"
	"github.com/crossplay/backend/pkg/grid"
	"github.com/crossplay/backend/pkg/placer"
	"github.com/crossplay/backend/pkg/validator"
	"github.com/crossplay/backend/pkg/wordlist"
)

// DefaultGridSize is the side length of the working grid before
// cropping to its filled extent.
const DefaultGridSize = 10

// MinGridSize is the minimum cropped extent (in either dimension) a
// result is allowed to have.
const MinGridSize = 6

// MaxRegenerationAttempts is how many independent attempts the
// generator makes — fresh grid, fresh placer, reshuffled word order —
// before giving up on a single Generate call.
const MaxRegenerationAttempts = 10

// MinCategorySize is the word count a category needs before it is
// considered usable for generation.
const MinCategorySize = 50

// DifficultyProfile bounds what a generated crossword of a given
// difficulty looks like. CommonOnly and Obscure are carried through
// from the dictionary's difficulty settings but are not consulted by
// the placement algorithm itself.
type DifficultyProfile struct {
	MinWordCount int
	MaxWordCount int
	MinWordLen   int
	MaxWordLen   int
	CommonOnly   bool
	Obscure      bool
}

// Profiles holds the three built-in difficulty settings.
var Profiles = map[string]DifficultyProfile{
	"easy": {
		MinWordCount: 8, MaxWordCount: 10,
		MinWordLen: 4, MaxWordLen: 8,
		CommonOnly: true,
	},
	"medium": {
		MinWordCount: 10, MaxWordCount: 12,
		MinWordLen: 3, MaxWordLen: 10,
	},
	"hard": {
		MinWordCount: 12, MaxWordCount: 15,
		MinWordLen: 3, MaxWordLen: 12,
		Obscure: true,
	},
}

// Result is a single generated crossword in the shape persisted and
// served to callers.
type Result struct {
	Grid        [][]string        `json:"grid"`
	Words       []grid.PlacedWord `json:"words"`
	Difficulty  string            `json:"difficulty"`
	Category    string            `json:"category"`
	Fingerprint string            `json:"id,omitempty"`
	Metadata    Metadata          `json:"metadata"`
}

// Metadata summarizes a Result for quick inspection without re-walking
// the grid.
type Metadata struct {
	WordCount   int
	GridHeight  int
	GridWidth   int
	FillDensity float64
}

// MarshalJSON renders Metadata in spec.md §6's shape: grid_size as a
// two-element [height, width] array rather than separate fields.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type wire struct {
		WordCount   int     `json:"word_count"`
		GridSize    [2]int  `json:"grid_size"`
		FillDensity float64 `json:"fill_density"`
	}
	return json.Marshal(wire{
		WordCount:   m.WordCount,
		GridSize:    [2]int{m.GridHeight, m.GridWidth},
		FillDensity: m.FillDensity,
	})
}

// UnmarshalJSON reverses MarshalJSON's wire shape.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var wire struct {
		WordCount   int     `json:"word_count"`
		GridSize    [2]int  `json:"grid_size"`
		FillDensity float64 `json:"fill_density"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.WordCount = wire.WordCount
	m.GridHeight = wire.GridSize[0]
	m.GridWidth = wire.GridSize[1]
	m.FillDensity = wire.FillDensity
	return nil
}

// Stats accumulates counters across every Generate call made by a
// Generator, guarded by a mutex the way the teacher's request-metrics
// tracker is.
type Stats struct {
	mu             sync.RWMutex
	totalGenerated int
	successful     int
	failed         int
	totalTime      time.Duration
}

func (s *Stats) record(ok bool, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalGenerated++
	if ok {
		s.successful++
	} else {
		s.failed++
	}
	s.totalTime += elapsed
}

// Snapshot is a point-in-time read of Stats.
type Snapshot struct {
	TotalGenerated    int
	Successful        int
	Failed            int
	SuccessRate       float64
	AvgGenerationTime time.Duration
}

func (s *Stats) snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		TotalGenerated: s.totalGenerated,
		Successful:     s.successful,
		Failed:         s.failed,
	}
	if s.totalGenerated > 0 {
		snap.SuccessRate = float64(s.successful) / float64(s.totalGenerated)
		snap.AvgGenerationTime = s.totalTime / time.Duration(s.totalGenerated)
	}
	return snap
}

// Generator builds crosswords from a loaded dictionary. It is safe for
// concurrent use: Generate calls share no mutable state except Stats,
// which is mutex-guarded.
type Generator struct {
	dictionary map[string][]wordlist.Entry
	gridSize   int
	stats      Stats
}

// New wraps a loaded dictionary (category name -> entries) for
// generation, using DefaultGridSize for the working grid's side.
func New(dictionary map[string][]wordlist.Entry) *Generator {
	return &Generator{dictionary: dictionary, gridSize: DefaultGridSize}
}

// NewWithGridSize is New with an explicit working-grid side, as read
// from the host's DEFAULT_GRID_SIZE configuration.
func NewWithGridSize(dictionary map[string][]wordlist.Entry, gridSize int) *Generator {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	return &Generator{dictionary: dictionary, gridSize: gridSize}
}

// Generate builds one crossword for category at the given difficulty.
// seed, if non-nil, makes the attempt sequence reproducible. excluded
// holds already-uppercased words to drop from the candidate pool before
// placement (e.g. words a player has already seen).
func (g *Generator) Generate(category, difficulty string, seed *int64, excluded map[string]bool) (*Result, error) {
	start := time.Now()

	profile, ok := Profiles[difficulty]
	if !ok {
		profile = Profiles["medium"]
		difficulty = "medium"
	}

	entries, ok := g.dictionary[category]
	if !ok {
		return nil, fmt.Errorf("category %q not found in dictionary", category)
	}

	entries = wordlist.ExcludeWords(entries, excluded)
	filtered := wordlist.FilterByLength(entries, profile.MinWordLen, profile.MaxWordLen)
	if len(filtered) < profile.MinWordCount {
		return nil, fmt.Errorf("not enough words in category %q: %d < %d", category, len(filtered), profile.MinWordCount)
	}

	ranked := wordlist.Rank(filtered)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}

	targetCount := profile.MinWordCount
	if profile.MaxWordCount > profile.MinWordCount {
		targetCount += rng.Intn(profile.MaxWordCount - profile.MinWordCount + 1)
	}

	for attempt := 0; attempt < MaxRegenerationAttempts; attempt++ {
		result := g.generateSingle(ranked, targetCount, rng, g.gridSize)
		if result != nil {
			result.Difficulty = difficulty
			result.Category = category
			g.stats.record(true, time.Since(start))
			return result, nil
		}
		rng.Shuffle(len(ranked), func(i, j int) { ranked[i], ranked[j] = ranked[j], ranked[i] })
	}

	g.stats.record(false, time.Since(start))
	return nil, fmt.Errorf("failed to generate a valid crossword for category %q after %d attempts", category, MaxRegenerationAttempts)
}

// generateSingle is one independent placement attempt: a fresh grid and
// placer, no state carried from any prior attempt.
func (g *Generator) generateSingle(ranked []wordlist.Entry, targetCount int, rng *rand.Rand, gridSize int) *Result {
	gr := grid.New(gridSize)
	p := placer.New(gr, rng)

	if !p.PlaceInitial(ranked) {
		return nil
	}

	placedCount := p.PlaceRemaining(ranked, targetCount, 1000)
	if placedCount < validator.MinWords {
		return nil
	}

	height, width := gr.CropEmptyEdges()
	if height < MinGridSize || width < MinGridSize {
		return nil
	}

	if valid, _ := validator.ValidateCrossword(gr); !valid {
		return nil
	}

	return formatResult(gr)
}

func formatResult(g *grid.Grid) *Result {
	array := g.ToArray()
	words := g.Words()

	height, width := 0, 0
	if len(array) > 0 {
		height = len(array)
		width = len(array[0])
	}

	return &Result{
		Grid:        array,
		Words:       words,
		Fingerprint: fingerprint.Of(g),
		Metadata: Metadata{
			WordCount:   len(words),
			GridHeight:  height,
			GridWidth:   width,
			FillDensity: round2(g.FillDensity()),
		},
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

// GenerateBatch calls Generate count times, collecting every successful
// result and silently dropping failures, matching the original batch
// helper's best-effort semantics.
func (g *Generator) GenerateBatch(category, difficulty string, count int) []*Result {
	results := make([]*Result, 0, count)
	for i := 0; i < count; i++ {
		r, err := g.Generate(category, difficulty, nil, nil)
		if err == nil {
			results = append(results, r)
		}
	}
	return results
}

// GetAvailableCategories lists every category name in the dictionary.
func (g *Generator) GetAvailableCategories() []string {
	names := make([]string, 0, len(g.dictionary))
	for name := range g.dictionary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryInfo is one row of GetCategoriesInfo.
type CategoryInfo struct {
	Name      string
	WordCount int
	Available bool
}

// GetCategoriesInfo reports word counts and availability for every
// category. Available means the category has at least MinCategorySize
// entries.
func (g *Generator) GetCategoriesInfo() []CategoryInfo {
	names := g.GetAvailableCategories()
	out := make([]CategoryInfo, 0, len(names))
	for _, name := range names {
		words := g.dictionary[name]
		out = append(out, CategoryInfo{
			Name:      name,
			WordCount: len(words),
			Available: len(words) >= MinCategorySize,
		})
	}
	return out
}

// CategoryStats summarizes the word lengths in a category.
type CategoryStats struct {
	TotalWords int
	MinLength  int
	MaxLength  int
	AvgLength  float64
}

// GetCategoryStats returns the length distribution of category's words,
// and a zero-value CategoryStats if category is unknown.
func (g *Generator) GetCategoryStats(category string) CategoryStats {
	words, ok := g.dictionary[category]
	if !ok || len(words) == 0 {
		return CategoryStats{}
	}

	stats := CategoryStats{TotalWords: len(words)}
	stats.MinLength = len([]rune(words[0].Word))
	total := 0
	for _, w := range words {
		n := len([]rune(w.Word))
		total += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}
	}
	stats.AvgLength = float64(total) / float64(len(words))
	return stats
}

// GetTotalWordCount sums word counts across every category.
func (g *Generator) GetTotalWordCount() int {
	total := 0
	for _, words := range g.dictionary {
		total += len(words)
	}
	return total
}

// GetGenerationStats returns a snapshot of this Generator's accumulated
// Generate call statistics.
func (g *Generator) GetGenerationStats() Snapshot {
	return g.stats.snapshot()
}

// ValidateDictionary checks every entry in every category against
// validator.ValidateWordEntry and flags categories below MinCategorySize.
func (g *Generator) ValidateDictionary() (bool, []string) {
	var errors []string

	for category, words := range g.dictionary {
		if len(words) < MinCategorySize {
			errors = append(errors, fmt.Sprintf("category %q: too few words (%d < %d)", category, len(words), MinCategorySize))
		}

		for i, entry := range words {
			if ok, entryErrors := validator.ValidateWordEntry(entry.Word); !ok {
				for _, e := range entryErrors {
					errors = append(errors, fmt.Sprintf("category %q, word #%d: %s", category, i, e))
				}
			}
		}
	}

	return len(errors) == 0, errors
}
