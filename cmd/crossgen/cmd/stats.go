package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossplay/backend/internal/dictionary"
	"github.com/crossplay/backend/pkg/generator"
)

var statsDictionary string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category word statistics for a dictionary",
	Long: `Load a dictionary file and print the word-length distribution and
availability of every category, plus the total word count across the
whole dictionary.

Example:
  crossgen stats -w dictionary.json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDictionary, "dictionary", "w", "", "path to the JSON dictionary file (required)")
	statsCmd.MarkFlagRequired("dictionary")
}

func runStats(cmd *cobra.Command, args []string) error {
	dict, err := dictionary.Load(statsDictionary)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	gen := generator.New(dict)

	fmt.Printf("%-24s %8s %8s %8s %10s %10s\n", "CATEGORY", "WORDS", "MIN_LEN", "MAX_LEN", "AVG_LEN", "AVAILABLE")
	for _, info := range gen.GetCategoriesInfo() {
		s := gen.GetCategoryStats(info.Name)
		fmt.Printf("%-24s %8d %8d %8d %10.1f %10t\n", info.Name, s.TotalWords, s.MinLength, s.MaxLength, s.AvgLength, info.Available)
	}

	fmt.Printf("\nTotal words across %d categories: %d\n", len(dict), gen.GetTotalWordCount())
	return nil
}
