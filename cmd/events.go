package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/display"
)

var eventsCmd = &cobra.Command{
	Use:   "events [query]",
	Short: "Search upcoming events nearby",
	Example: `  lokal events "yoga"
  lokal events "food walk" --json`,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	rawQuery := strings.TrimSpace(strings.Join(args, " "))
	res := a.pipeline.Process(rawQuery, catalog.CategoryAll)

	events, err := a.events.ResolveEvents(cmd.Context(), res.ProcessedQuery)
	if err != nil {
		return upstreamError("searching events", err)
	}
	if flagLimit > 0 && flagLimit < len(events) {
		events = events[:flagLimit]
	}

	if len(events) == 0 {
		return notFoundError(
			"no events match your search",
			"Try a broader query, e.g. `lokal events yoga`.",
		)
	}

	if flagJSON {
		return display.PrintEventsJSON(cmd.OutOrStdout(), events)
	}
	display.PrintEvents(cmd.OutOrStdout(), events)
	return nil
}
