package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossplay/backend/pkg/generator"
	"github.com/crossplay/backend/pkg/validator"
)

var validateDictionary string

// rawDictionaryEntry mirrors the on-disk shape without enforcing the
// closed Cyrillic alphabet at parse time, so every malformed record in
// the file can be reported rather than aborting at the first one.
type rawDictionaryEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
	Hint string `json:"hint"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a dictionary file",
	Long: `Validate every entry of a category-keyed JSON dictionary file:
word length and alphabet per entry, and minimum category size.

Unlike the server's loader (which rejects a dictionary at the first bad
entry), this command collects and reports every violation it finds.

Example:
  crossgen validate -w dictionary.json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateDictionary, "dictionary", "w", "", "path to the JSON dictionary file (required)")
	validateCmd.MarkFlagRequired("dictionary")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(validateDictionary)
	if err != nil {
		return fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var raw map[string][]rawDictionaryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse dictionary file: %w", err)
	}

	var errs []string
	for category, entries := range raw {
		if len(entries) < generator.MinCategorySize {
			errs = append(errs, fmt.Sprintf("category %q: too few words (%d < %d)", category, len(entries), generator.MinCategorySize))
		}

		for i, e := range entries {
			if e.Word == "" || e.Clue == "" || e.Hint == "" {
				errs = append(errs, fmt.Sprintf("category %q, entry #%d: missing word/clue/hint field", category, i))
				continue
			}
			if ok, entryErrs := validator.ValidateWordEntry(e.Word); !ok {
				for _, msg := range entryErrs {
					errs = append(errs, fmt.Sprintf("category %q, entry #%d: %s", category, i, msg))
				}
			}
		}
	}

	fmt.Printf("Checked %d categories\n", len(raw))

	if len(errs) == 0 {
		fmt.Println("Dictionary is valid")
		return nil
	}

	shown := errs
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, e := range shown {
		fmt.Println("  -", e)
	}
	if len(errs) > len(shown) {
		fmt.Printf("  ... and %d more\n", len(errs)-len(shown))
	}

	return fmt.Errorf("dictionary failed validation with %d error(s)", len(errs))
}
