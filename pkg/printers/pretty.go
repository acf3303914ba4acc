// Package printers renders events and month grids for the terminal.
// Pure presentation: all calendar and sorting logic stays in the core.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("1718000000000-abcdef12  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Events prints a sorted collection grouped by day, one title per date.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	var day event.Date
	for i, e := range events {
		if i == 0 || !e.Date.Equal(day) {
			if i > 0 {
				fmt.Println("")
			}
			day = e.Date
			pp.Title(event.FormatDate(day))
		}
		pp.line(e)
	}
	_, _ = fmt.Println("")
}

func (pp *PrettyPrint) line(e *event.Event) {
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Print(e.ID)
		_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
	}
	_, _ = t.Printf("%s %s  %s ", e.Time, priorityMark(e.Priority), e.Text)
	_, _ = c.Printf("(%s)\n", event.CategoryDetails(string(e.Category)).Label)
}

// Table prints the collection as one row per event.
func (pp *PrettyPrint) Table(events ...*event.Event) {
	table := uitable.New()
	table.MaxColWidth = event.MaxTextLen
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TIME", "PRIORITY", "CATEGORY", "TEXT")
	} else {
		table.AddRow("DATE", "TIME", "PRIORITY", "CATEGORY", "TEXT")
	}
	for _, e := range events {
		priority := event.PriorityDetails(string(e.Priority)).Label
		category := event.CategoryDetails(string(e.Category)).Label
		if pp.ShowID {
			table.AddRow(e.ID, e.Date.String(), e.Time.String(), priority, category, e.Text)
		} else {
			table.AddRow(e.Date.String(), e.Time.String(), priority, category, e.Text)
		}
	}
	_, _ = fmt.Fprintln(color.Output, table)
}

func priorityMark(p event.Priority) string {
	switch p {
	case event.PriorityHigh:
		return "✷"
	case event.PriorityLow:
		return "·"
	default:
		return "◦"
	}
}
