// Package dategrid provides the pure month-grid arithmetic shared by
// every calendar renderer.
package dategrid

import "time"

// DaysInMonth returns the day count for the month using the "day zero
// of the next month" technique.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the weekday of the first of the month,
// remapped so Monday=0 .. Sunday=6.
func FirstWeekdayOffset(year int, month time.Month) int {
	raw := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	if raw == 0 {
		return 6
	}
	return raw - 1
}

// IsSameDay reports whether both times fall on the same calendar day,
// ignoring time-of-day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day()
}

// Cell is one slot in a 7-column, Monday-first month grid. Day is zero
// for the leading blanks before the first of the month.
type Cell struct {
	Day int
}

// Blank reports whether the cell is a leading filler before day one.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid lays out a month: FirstWeekdayOffset leading blank cells followed
// by DaysInMonth numbered cells, left to right, top to bottom.
func Grid(year int, month time.Month) []Cell {
	offset := FirstWeekdayOffset(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day})
	}
	return cells
}

// Rows returns how many 7-column rows the month grid occupies.
func Rows(year int, month time.Month) int {
	return (FirstWeekdayOffset(year, month) + DaysInMonth(year, month) + 6) / 7
}
