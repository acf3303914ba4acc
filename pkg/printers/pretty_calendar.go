package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/dategrid"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a Monday-first month grid. Days with events are printed
// bright, today is underlined.
func (pp *PrettyPrint) Month(year int, month time.Month, hasEvents func(day int) bool, today time.Time) {
	tf := color.New(color.FgWhite, color.Italic)

	title := fmt.Sprintf("%s %d", month, year)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)
	tf.Println("Mo Tu We Th Fr Sa Su")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	col := 0
	for _, cell := range dategrid.Grid(year, month) {
		if cell.Blank() {
			fmt.Print("   ")
		} else {
			printer := l1
			if hasEvents != nil && hasEvents(cell.Day) {
				printer = l2
			}
			if dategrid.IsSameDay(time.Date(year, month, cell.Day, 0, 0, 0, 0, time.Local), today) {
				printer = color.New(color.Bold, color.FgHiWhite, color.Underline)
			}
			printer.Printf("%2d ", cell.Day)
		}

		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
