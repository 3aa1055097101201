package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/display"
	"github.com/priyadarshn/lokal/internal/filter"
)

var (
	flagConfig      string
	flagCategory    string
	flagMinRating   float64
	flagMaxDistance float64
	flagUnit        string
	flagOpenNow     bool
	flagPrice       int
	flagLimit       int
	flagJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "lokal [query]",
	Short: "Search places, services and events around you",
	Long: "CLI for local discovery: type what you are looking for in plain words\n" +
		"and get ranked places, services and events.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -category cafes, cat=cafes, --catgory cafes).",
	Example: `  lokal "flute teacher in malleshwaram"
  lokal "coffee" --min-rating 4.5 --open-now
  lokal "plumber" --category services --max-distance 5 --unit km
  lokal events "yoga"
  lokal categories --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")

	registerSearchFilterFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagConfig = ""
	flagCategory = ""
	flagMinRating = 0
	flagMaxDistance = 0
	flagUnit = ""
	flagOpenNow = false
	flagPrice = 0
	flagLimit = 0
	flagJSON = false
}

func registerSearchFilterFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagCategory, "category", "c", "", "Category hint (e.g. cafes, fitness, services)")
	f.Float64VarP(&flagMinRating, "min-rating", "r", 0, "Minimum rating (0-5)")
	f.Float64VarP(&flagMaxDistance, "max-distance", "d", 0, "Maximum distance in the chosen unit (0 = no limit)")
	f.StringVarP(&flagUnit, "unit", "u", "", "Distance unit: km or mi")
	f.BoolVar(&flagOpenNow, "open-now", false, "Only places open right now")
	f.IntVarP(&flagPrice, "price", "p", 0, "Maximum price tier, e.g. 2 keeps $ and $$ (0 = all)")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

func validateFlags(defaultUnit string) error {
	if flagMinRating < 0 || flagMinRating > 5 {
		return invalidArgsError(
			"--min-rating must be between 0 and 5",
			`lokal "coffee" --min-rating 4`,
		)
	}
	switch strings.ToLower(resolveUnit(defaultUnit)) {
	case "km", "mi":
		return nil
	default:
		return invalidArgsError(
			"invalid value for --unit (use km or mi)",
			`lokal "plumber" --max-distance 5 --unit km`,
		)
	}
}

// resolveUnit picks the flag value when set, else the configured default.
func resolveUnit(defaultUnit string) string {
	if flagUnit != "" {
		return flagUnit
	}
	if defaultUnit != "" {
		return defaultUnit
	}
	return "mi"
}

func filterOptions(defaultUnit string) filter.Options {
	return filter.Options{
		MinRating:   flagMinRating,
		MaxDistance: flagMaxDistance,
		PriceLevel:  flagPrice,
		OpenNowOnly: flagOpenNow,
		Unit:        resolveUnit(defaultUnit),
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := validateFlags(a.cfg.Search.DefaultUnit); err != nil {
		return err
	}

	rawQuery := strings.TrimSpace(strings.Join(args, " "))

	var items []catalog.Recommendation
	if rawQuery == "" {
		items, err = a.places.DefaultSet(cmd.Context(), a.cfg.Search.DefaultLimit)
		if err != nil {
			return upstreamError("fetching top rated", err)
		}
	} else {
		res := a.pipeline.Process(rawQuery, catalog.ParseCategory(flagCategory))
		if !flagJSON {
			display.PrintQueryContext(cmd.OutOrStdout(), res.ProcessedQuery, res.Category)
		}
		items, err = a.places.Resolve(cmd.Context(), res.ProcessedQuery, res.Category)
		if err != nil {
			return upstreamError("searching places", err)
		}
	}

	items = filter.Apply(items, filterOptions(a.cfg.Search.DefaultUnit))
	if flagLimit > 0 && flagLimit < len(items) {
		items = items[:flagLimit]
	}

	if len(items) == 0 {
		return notFoundError(
			"no places match your search",
			"Relax filters like --min-rating/--max-distance/--open-now.",
		)
	}

	if flagJSON {
		return display.PrintRecommendationsJSON(cmd.OutOrStdout(), items)
	}
	display.PrintRecommendations(cmd.OutOrStdout(), items)
	return nil
}
