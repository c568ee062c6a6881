package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDictionary(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test dictionary: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeDictionary(t, `{
		"космос": [
			{"word": "атом", "clue": "частица", "hint": "физика"},
			{"word": "ракета", "clue": "летит в космос", "hint": "транспорт"}
		]
	}`)

	dict, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	entries, ok := dict["космос"]
	if !ok || len(entries) != 2 {
		t.Fatalf("expected 2 entries in category, got %+v", dict)
	}
	if entries[0].Word != "АТОМ" {
		t.Errorf("expected uppercased word, got %q", entries[0].Word)
	}
}

func TestLoadRejectsNonCyrillic(t *testing.T) {
	path := writeDictionary(t, `{
		"space": [{"word": "atom", "clue": "", "hint": ""}]
	}`)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a non-Cyrillic word")
	}
}

func TestLoadRejectsShortWord(t *testing.T) {
	path := writeDictionary(t, `{
		"space": [{"word": "ам", "clue": "", "hint": ""}]
	}`)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for a too-short word")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/dictionary.json"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeDictionary(t, `not json`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
