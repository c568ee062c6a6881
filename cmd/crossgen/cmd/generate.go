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
	genDictionary string
	genCategory   string
	genDifficulty string
	genCount      int
	genSeed       int64
	genHasSeed    bool
	genOutput     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword puzzles from a dictionary",
	Long: `Generate one or more crosswords for a single category and difficulty,
writing one JSON file per puzzle in the shape described by the engine's
output format (grid, words, difficulty, category, metadata).

Examples:
  # Generate 10 easy puzzles for category "space"
  crossgen generate -w dictionary.json -c space -d easy -n 10 -o ./puzzles

  # Generate one reproducible puzzle with a fixed seed
  crossgen generate -w dictionary.json -c space -d hard --seed 42 -o .`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genDictionary, "dictionary", "w", "", "path to the JSON dictionary file (required)")
	generateCmd.Flags().StringVarP(&genCategory, "category", "c", "", "category to generate from (required)")
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "difficulty (easy, medium, hard)")
	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of puzzles to generate")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "seed for the first puzzle's random stream (each subsequent puzzle derives its own seed)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "output directory for generated puzzle files")

	generateCmd.MarkFlagRequired("dictionary")
	generateCmd.MarkFlagRequired("category")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	genHasSeed = cmd.Flags().Changed("seed")

	if verbosity > 0 {
		fmt.Printf("Loading dictionary from: %s\n", genDictionary)
	}

	dict, err := dictionary.Load(genDictionary)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	gen := generator.New(dict)

	if err := os.MkdirAll(genOutput, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d puzzle(s) for category %q at difficulty %q\n", genCount, genCategory, genDifficulty)

	failures := 0
	for i := 1; i <= genCount; i++ {
		var seed *int64
		if genHasSeed {
			s := genSeed + int64(i-1)
			seed = &s
		}

		fmt.Printf("[%d/%d] Generating... ", i, genCount)

		result, err := gen.Generate(genCategory, genDifficulty, seed, nil)
		if err != nil {
			fmt.Printf("FAILED (%v)\n", err)
			failures++
			continue
		}

		path := filepath.Join(genOutput, fmt.Sprintf("puzzle_%03d.json", i))
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode puzzle %d: %w", i, err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write puzzle %d: %w", i, err)
		}

		fmt.Printf("OK (%s, %d words)\n", path, len(result.Words))
	}

	fmt.Printf("\n%d/%d puzzle(s) generated successfully\n", genCount-failures, genCount)
	if failures > 0 {
		return fmt.Errorf("%d of %d puzzles failed to generate", failures, genCount)
	}
	return nil
}
