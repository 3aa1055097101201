package cmd

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/search"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively with live results",
	Example: `  lokal tui
  lokal tui --category cafes`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	registerSearchFilterFlags(tuiCmd.Flags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`lokal tui` requires an interactive terminal",
			`Use `+"`"+`lokal "coffee" --json`+"`"+` in pipelines.`,
		)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := validateFlags(a.cfg.Search.DefaultUnit); err != nil {
		return err
	}

	ctrl := search.New(a.pipeline, a.places, a.events, search.Config{
		Quiet:        time.Duration(a.cfg.Search.DebounceMS) * time.Millisecond,
		DefaultLimit: a.cfg.Search.DefaultLimit,
		Logger:       a.log,
	})
	defer ctrl.Close()

	model := newSearchTUIModel(ctrl, catalog.ParseCategory(flagCategory), filterOptions(a.cfg.Search.DefaultUnit))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(searchTUIModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
