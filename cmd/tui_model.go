package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/filter"
	"github.com/priyadarshn/lokal/internal/search"
)

var (
	tuiHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiOpenStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	tuiClosedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	tuiErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	tuiSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

const tuiMaxVisible = 8

// snapshotMsg carries a controller state change into the tea loop.
type snapshotMsg search.Snapshot

type searchTUIModel struct {
	ctrl *search.Controller

	input   textinput.Model
	spinner spinner.Model

	snap     search.Snapshot
	opts     filter.Options
	fatalErr error

	width, height int
}

func newSearchTUIModel(ctrl *search.Controller, initial catalog.Category, opts filter.Options) searchTUIModel {
	input := textinput.New()
	input.Placeholder = `try "flute teacher in malleshwaram"`
	input.Prompt = "search> "
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	if initial != catalog.CategoryAll {
		ctrl.SetCategory(initial)
	} else {
		// Empty query loads the top-rated default set right away.
		ctrl.SetQuery("")
	}

	return searchTUIModel{
		ctrl:    ctrl,
		input:   input,
		spinner: spin,
		snap:    ctrl.Snapshot(),
		opts:    opts,
	}
}

func listenForUpdates(updates <-chan search.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-updates)
	}
}

func (m searchTUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, listenForUpdates(m.ctrl.Updates()))
}

func (m searchTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = maxInt(20, m.width-12)
		return m, nil

	case snapshotMsg:
		m.snap = search.Snapshot(msg)
		return m, listenForUpdates(m.ctrl.Updates())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.ctrl.SetCategory(nextCategory(m.snap.Category))
			return m, nil
		case "ctrl+o":
			m.opts.OpenNowOnly = !m.opts.OpenNowOnly
			return m, nil
		case "ctrl+r":
			m.opts.MinRating = nextMinRating(m.opts.MinRating)
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.ctrl.SetQuery(m.input.Value())
		}
		return m, cmd
	}

	return m, nil
}

func (m searchTUIModel) View() string {
	var b strings.Builder

	b.WriteString(tuiHeaderStyle.Render("lokal — local discovery"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if m.snap.Err != nil {
		b.WriteString(tuiErrorStyle.Render(m.snap.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	items := filter.Apply(m.snap.Recommendations, m.opts)
	if len(items) == 0 && !m.snap.Loading {
		b.WriteString(tuiMetaStyle.Render("no places match"))
		b.WriteString("\n")
	}
	for i, item := range items {
		if i >= tuiMaxVisible {
			b.WriteString(tuiMetaStyle.Render(fmt.Sprintf("… and %d more", len(items)-tuiMaxVisible)))
			b.WriteString("\n")
			break
		}
		b.WriteString(renderTUIPlace(item))
	}

	if len(m.snap.Events) > 0 {
		b.WriteString("\n")
		b.WriteString(tuiSectionStyle.Render(fmt.Sprintf("Events (%d)", len(m.snap.Events))))
		b.WriteString("\n")
		for i, ev := range m.snap.Events {
			if i >= 3 {
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				tuiNameStyle.Render(ev.Title),
				tuiMetaStyle.Render(ev.Date+" · "+ev.Location),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(tuiHintStyle.Render("tab: category · ctrl+o: open now · ctrl+r: min rating · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m searchTUIModel) statusLine() string {
	parts := []string{"category: " + string(m.snap.Category)}
	if m.opts.OpenNowOnly {
		parts = append(parts, "open now")
	}
	if m.opts.MinRating > 0 {
		parts = append(parts, fmt.Sprintf("rating ≥ %.1f", m.opts.MinRating))
	}
	status := tuiMetaStyle.Render(strings.Join(parts, " · "))
	if m.snap.Loading {
		status += " " + m.spinner.View() + tuiMetaStyle.Render("searching…")
	}
	return status
}

func renderTUIPlace(item catalog.Recommendation) string {
	tag := ""
	if item.OpenNow != nil {
		if *item.OpenNow {
			tag = tuiOpenStyle.Render("●") + " "
		} else {
			tag = tuiClosedStyle.Render("●") + " "
		}
	}
	meta := []string{fmt.Sprintf("%.1f★", item.Rating)}
	if item.Distance != "" {
		meta = append(meta, item.Distance)
	}
	if item.PriceLevel != "" {
		meta = append(meta, item.PriceLevel)
	}
	return fmt.Sprintf("  %s%s  %s\n    %s\n",
		tag,
		tuiNameStyle.Render(item.Name),
		tuiMetaStyle.Render(strings.Join(meta, " · ")),
		tuiHintStyle.Render(item.Address),
	)
}

func nextCategory(current catalog.Category) catalog.Category {
	for i, cat := range catalog.Categories {
		if cat == current {
			return catalog.Categories[(i+1)%len(catalog.Categories)]
		}
	}
	return catalog.CategoryAll
}

func nextMinRating(current float64) float64 {
	switch current {
	case 0:
		return 3
	case 3:
		return 4
	case 4:
		return 4.5
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
