package display

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	openTag      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))  // green
	closedTag    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))  // red
	ratingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))             // yellow
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// PrintRecommendations renders a list of places to the writer.
func PrintRecommendations(w io.Writer, items []catalog.Recommendation) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Nearby results"),
		cyanStyle.Render(fmt.Sprintf("%d places", len(items))),
	)
	for _, item := range items {
		printRecommendation(w, item)
		fmt.Fprintln(w)
	}
}

// PrintRecommendationsJSON renders places as JSON.
func PrintRecommendationsJSON(w io.Writer, items []catalog.Recommendation) error {
	if items == nil {
		items = []catalog.Recommendation{}
	}
	return json.NewEncoder(w).Encode(items)
}

// PrintEvents renders a list of events to the writer.
func PrintEvents(w io.Writer, events []catalog.Event) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("Upcoming events"),
		cyanStyle.Render(fmt.Sprintf("%d events", len(events))),
	)
	for _, ev := range events {
		fmt.Fprintf(w, "  %s\n", titleStyle.Render(ev.Title))
		fmt.Fprintf(w, "    %s\n", cyanStyle.Render(ev.Date+" at "+ev.Time))
		fmt.Fprintf(w, "    %s\n", ev.Location)
		if ev.Description != "" {
			fmt.Fprintf(w, "    %s\n", dimStyle.Render(wordWrap(ev.Description, 72, "    ")))
		}
		if ev.Attendees > 0 {
			fmt.Fprintf(w, "    %s\n", dimStyle.Render(fmt.Sprintf("%d attending", ev.Attendees)))
		}
		fmt.Fprintln(w)
	}
}

// PrintEventsJSON renders events as JSON.
func PrintEventsJSON(w io.Writer, events []catalog.Event) error {
	if events == nil {
		events = []catalog.Event{}
	}
	return json.NewEncoder(w).Encode(events)
}

// PrintCategories renders the category enumeration with result counts.
func PrintCategories(w io.Writer, counts map[catalog.Category]int) {
	type catCount struct {
		Name  catalog.Category
		Count int
	}
	sorted := make([]catCount, 0, len(counts))
	for k, v := range counts {
		sorted = append(sorted, catCount{k, v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Categories:"))
	for _, c := range sorted {
		fmt.Fprintf(w, "  %s: %d places\n", cyanStyle.Render(string(c.Name)), c.Count)
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders category counts as JSON.
func PrintCategoriesJSON(w io.Writer, counts map[catalog.Category]int) error {
	return json.NewEncoder(w).Encode(counts)
}

// PrintQueryContext prints a dim line showing how the query was understood.
func PrintQueryContext(w io.Writer, processed string, category catalog.Category) {
	fmt.Fprintf(w, "%s\n",
		dimStyle.Render(fmt.Sprintf("Searching %q in %s", processed, category)),
	)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// PrintWarning prints a styled warning message.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render(msg))
}

func printRecommendation(w io.Writer, item catalog.Recommendation) {
	name := item.Name
	if name == "" {
		name = "Unknown"
	}

	tag := ""
	if item.OpenNow != nil {
		if *item.OpenNow {
			tag = openTag.Render("OPEN") + " "
		} else {
			tag = closedTag.Render("CLOSED") + " "
		}
	}
	fmt.Fprintf(w, "  %s%s\n", tag, titleStyle.Render(name))

	var parts []string
	if item.Rating > 0 {
		parts = append(parts, ratingStyle.Render(fmt.Sprintf("%.1f★", item.Rating)))
	}
	if item.ReviewCount > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d reviews", item.ReviewCount)))
	}
	if item.PriceLevel != "" {
		parts = append(parts, item.PriceLevel)
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "    %s\n", strings.Join(parts, " | "))
	}

	if item.Description != "" {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(wordWrap(item.Description, 72, "    ")))
	}

	var meta []string
	if item.Address != "" {
		meta = append(meta, item.Address)
	}
	if item.Distance != "" {
		meta = append(meta, item.Distance)
	}
	if item.Hours != "" {
		meta = append(meta, item.Hours)
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(strings.Join(meta, " | ")))
	}
	if item.Phone != "" {
		fmt.Fprintf(w, "    %s\n", cyanStyle.Render(item.Phone))
	}
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
