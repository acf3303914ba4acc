// Package calendar renders a styled month grid for the interactive UI.
// Layout follows the core grid contract: Monday-first, leading blanks,
// then the numbered days.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/dategrid"
)

// Day describes metadata used when rendering one cell.
type Day struct {
	Day        int
	HasEvents  bool
	IsToday    bool
	IsSelected bool
}

// Options controls the styling of the rendered calendar.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styles used by the agenda UI.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle().Faint(true),
		EventStyle:    lipgloss.NewStyle().Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// Render produces a multi-line month grid for the given month.
func Render(year int, month time.Month, days []Day, opts Options) string {
	meta := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= dategrid.DaysInMonth(year, month) {
			meta[d.Day] = d
		}
	}

	lines := []string{opts.TitleStyle.Render(fmt.Sprintf("%s %d", month, year))}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Mo Tu We Th Fr Sa Su"))
	}

	var cells []string
	flush := func() {
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
		cells = cells[:0]
	}
	for _, cell := range dategrid.Grid(year, month) {
		if cell.Blank() {
			cells = append(cells, opts.EmptyStyle.Render("  "))
		} else {
			cells = append(cells, renderDay(meta[cell.Day], cell.Day, opts))
		}
		if len(cells) == 7 {
			flush()
		}
	}
	if len(cells) > 0 {
		flush()
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	style := opts.EmptyStyle
	if info.HasEvents {
		style = opts.EventStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", day))
}
