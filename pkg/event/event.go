// Package event defines the calendar event model: the Event entity, its
// Date and Time value types, the category/priority taxonomies, and the
// clamp-and-repair validation rules for user input.
package event

import "fmt"

// Event is a single user-created calendar entry. The ID is assigned by
// the store and is unique within it at all times.
type Event struct {
	ID       string   `json:"id"`
	Date     Date     `json:"date"`
	Time     Time     `json:"time"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

// New constructs an unstored event. Category and priority resolve to
// their defaults when unrecognized; text and time are expected to be
// pre-validated by the caller.
func New(date Date, t Time, text string, category Category, priority Priority) *Event {
	return &Event{
		Date:     date,
		Time:     t,
		Text:     text,
		Category: ParseCategory(string(category)),
		Priority: ParsePriority(string(priority)),
	}
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s  %s", FormatDate(e.Date), e.Time, e.Text)
}
