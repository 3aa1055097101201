package cmd

import (
	"github.com/spf13/cobra"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/display"
	"github.com/priyadarshn/lokal/internal/filter"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category enumeration with local result counts",
	Example: `  lokal categories
  lokal categories --json`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	counts := filter.CountByCategory(a.corpus.Places)
	for cat, set := range a.corpus.Curated {
		counts[cat] += len(set)
	}
	// Every member of the enumeration shows up, even with zero results.
	for _, cat := range catalog.Categories {
		if cat == catalog.CategoryAll {
			continue
		}
		counts[cat] += 0
	}

	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), counts)
	}
	display.PrintCategories(cmd.OutOrStdout(), counts)
	return nil
}
