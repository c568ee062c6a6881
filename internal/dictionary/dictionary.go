// Package dictionary loads the category-keyed JSON word list the
// generator draws from, validating every record at load time the way
// pkg/wordlist.LoadBrodaWordlist validates every line of its own
// format before returning.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crossplay/backend/pkg/letters"
	"github.com/crossplay/backend/pkg/wordlist"
)

// rawEntry mirrors the on-disk JSON shape: {"word": "...", "clue": "...", "hint": "..."}.
type rawEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
	Hint string `json:"hint"`
}

// Load reads a category-keyed dictionary file (category name -> list
// of word entries) and validates every entry's word against the closed
// Cyrillic alphabet and length bounds. It returns an error naming the
// first offending category and index if validation fails.
func Load(path string) (map[string][]wordlist.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var raw map[string][]rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file: %w", err)
	}

	out := make(map[string][]wordlist.Entry, len(raw))
	for category, entries := range raw {
		converted := make([]wordlist.Entry, 0, len(entries))
		for i, e := range entries {
			upper, err := letters.Normalize(e.Word)
			if err != nil {
				return nil, fmt.Errorf("category %q, entry #%d: %w", category, i, err)
			}
			if err := letters.ValidateLength(upper); err != nil {
				return nil, fmt.Errorf("category %q, entry #%d: %w", category, i, err)
			}
			converted = append(converted, wordlist.Entry{Word: upper, Clue: e.Clue, Hint: e.Hint})
		}
		out[category] = converted
	}

	return out, nil
}
