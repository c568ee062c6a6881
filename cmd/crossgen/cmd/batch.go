package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crossplay/backend/internal/dictionary"
	"github.com/crossplay/backend/pkg/generator"
)

var (
	batchDictionary string
	batchDifficulty string
	batchOutput     string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate one puzzle for every usable category",
	Long: `Run generate once per category that has enough words for the
requested difficulty, writing one JSON file per category. Categories
too small for the difficulty are skipped and reported, not treated as
failures.

Example:
  crossgen batch -w dictionary.json -d medium -o ./puzzles`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchDictionary, "dictionary", "w", "", "path to the JSON dictionary file (required)")
	batchCmd.Flags().StringVarP(&batchDifficulty, "difficulty", "d", "medium", "difficulty (easy, medium, hard)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", ".", "output directory for generated puzzle files")

	batchCmd.MarkFlagRequired("dictionary")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dict, err := dictionary.Load(batchDictionary)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	gen := generator.New(dict)

	if err := os.MkdirAll(batchOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	categories := gen.GetCategoriesInfo()
	fmt.Printf("Running batch generation over %d categories at difficulty %q\n", len(categories), batchDifficulty)

	skipped, failed, succeeded := 0, 0, 0
	for _, info := range categories {
		if !info.Available {
			fmt.Printf("%-24s SKIPPED (only %d words, need >= %d)\n", info.Name, info.WordCount, generator.MinCategorySize)
			skipped++
			continue
		}

		result, err := gen.Generate(info.Name, batchDifficulty, nil, nil)
		if err != nil {
			fmt.Printf("%-24s FAILED (%v)\n", info.Name, err)
			failed++
			continue
		}

		path := filepath.Join(batchOutput, fmt.Sprintf("%s.json", info.Name))
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode category %q: %w", info.Name, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write category %q: %w", info.Name, err)
		}

		fmt.Printf("%-24s OK (%s, %d words)\n", info.Name, path, len(result.Words))
		succeeded++
	}

	fmt.Printf("\n%d succeeded, %d failed, %d skipped\n", succeeded, failed, skipped)
	return nil
}
