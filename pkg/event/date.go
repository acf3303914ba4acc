package event

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/dategrid"
)

const layoutISO = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a date from its parts, normalizing overflow the way
// time.Date does (e.g. January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns local midnight on the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Equal reports calendar-value equality, independent of zone or
// time-of-day in the values the dates were built from.
func (d Date) Equal(other Date) bool {
	return dategrid.IsSameDay(d.Time(), other.Time())
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// SameDay reports whether the date falls on the same calendar day as t.
func (d Date) SameDay(t time.Time) bool {
	return dategrid.IsSameDay(d.Time(), t)
}

func (d Date) String() string {
	return d.Time().Format(layoutISO)
}

// MarshalJSON encodes the date as an ISO-8601 date string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a plain ISO-8601 date or a full RFC 3339
// timestamp, so collections exported by the browser app (JS Date
// serialization) reconstruct to the same calendar value.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if t, err := time.Parse(layoutISO, raw); err == nil {
		*d = DateOf(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("event: cannot parse date %q: %w", raw, err)
	}
	*d = DateOf(t)
	return nil
}

// FormatDate renders the long display form of a date, e.g.
// "Sunday, March 9, 2025". Display only, never a sort key.
func FormatDate(d Date) string {
	return d.Time().Format("Monday, January 2, 2006")
}
