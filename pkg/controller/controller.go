// Package controller drives the calendar view: month navigation, the
// day-click-to-popup flow, and the form submissions that feed the event
// store. It owns the transient view state; the store owns the events.
package controller

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

// ErrPastDate is the refused transition for clicking a day before
// today. Not a failure: the view state is left untouched and the
// caller surfaces a notification.
var ErrPastDate = errors.New("controller: cannot schedule on a past date")

// State names the two UI states.
type State int

const (
	Browsing State = iota
	PopupOpen
)

// ViewState is the transient, serializable calendar view state. It is
// reset, never persisted.
type ViewState struct {
	Month    time.Month
	Year     int
	Selected event.Date
	Editing  *event.Event
	State    State
}

// Form is the data contract the popup submits.
type Form struct {
	Text     string
	Hours    string
	Minutes  string
	Category string
	Priority string
	// Date, when set, intentionally moves the event being edited.
	Date *event.Date
}

// Controller wires the view transitions to the store.
type Controller struct {
	store *store.Store
	now   func() time.Time
	view  ViewState
}

// New creates a controller browsing the current month.
func New(s *store.Store) *Controller {
	return NewWithClock(s, time.Now)
}

// NewWithClock fixes the controller's notion of "today"; used by tests
// and anything replaying past sessions.
func NewWithClock(s *store.Store, now func() time.Time) *Controller {
	t := now()
	return &Controller{
		store: s,
		now:   now,
		view: ViewState{
			Month: t.Month(),
			Year:  t.Year(),
		},
	}
}

// View returns a copy of the current view state.
func (c *Controller) View() ViewState {
	return c.view
}

// Today returns the controller's current date.
func (c *Controller) Today() event.Date {
	return event.DateOf(c.now())
}

// PrevMonth navigates one month back, wrapping January into December of
// the previous year.
func (c *Controller) PrevMonth() {
	if c.view.Month == time.January {
		c.view.Month = time.December
		c.view.Year--
		return
	}
	c.view.Month--
}

// NextMonth navigates one month forward, wrapping December into January
// of the next year.
func (c *Controller) NextMonth() {
	if c.view.Month == time.December {
		c.view.Month = time.January
		c.view.Year++
		return
	}
	c.view.Month++
}

// ShowMonth jumps the browsed view directly to a month.
func (c *Controller) ShowMonth(year int, month time.Month) {
	c.view.Year = year
	c.view.Month = month
}

// DayClick builds a candidate date from the browsed month and the
// clicked day, and opens the popup for it. Clicking a day before today
// is refused with ErrPastDate and no state change; today itself is
// allowed.
func (c *Controller) DayClick(day int) error {
	candidate := event.NewDate(c.view.Year, c.view.Month, day)
	if candidate.Before(c.Today()) {
		return fmt.Errorf("%w: %s", ErrPastDate, candidate)
	}
	c.view.Selected = candidate
	c.view.Editing = nil
	c.view.State = PopupOpen
	return nil
}

// EditEvent opens the popup with the event as editing target and its
// date selected, regardless of the month currently browsed.
func (c *Controller) EditEvent(id string) error {
	e, ok := c.store.Get(id)
	if !ok {
		return store.ErrNotFound
	}
	c.view.Selected = e.Date
	c.view.Editing = e
	c.view.State = PopupOpen
	return nil
}

// SubmitEvent validates the form and delegates to the store: update
// when an editing target is set, create otherwise. On success the view
// returns to Browsing. A validation error keeps the popup open so the
// form can surface it inline.
func (c *Controller) SubmitEvent(f Form) (*event.Event, error) {
	text, err := event.ValidateText(f.Text)
	if err != nil {
		return nil, err
	}
	t := event.ValidateTime(f.Hours, f.Minutes)
	category := event.ParseCategory(f.Category)
	priority := event.ParsePriority(f.Priority)

	var e *event.Event
	if c.view.Editing != nil {
		patch := event.Event{
			Time:     t,
			Text:     text,
			Category: category,
			Priority: priority,
		}
		if f.Date != nil {
			patch.Date = *f.Date
		}
		e, err = c.store.Update(c.view.Editing.ID, patch)
		if err != nil {
			return nil, err
		}
	} else {
		date := c.view.Selected
		if f.Date != nil {
			date = *f.Date
		}
		e = c.store.Create(date, t, text, category, priority)
	}

	c.view.Editing = nil
	c.view.State = Browsing
	return e, nil
}

// ClosePopup returns to Browsing, discarding any in-progress unsaved
// form state. Already-committed store mutations are never rolled back.
func (c *Controller) ClosePopup() {
	c.view.Editing = nil
	c.view.State = Browsing
}

// DeleteEvent removes the event and reports whether a removal occurred.
func (c *Controller) DeleteEvent(id string) bool {
	return c.store.Delete(id)
}

// ClearAll empties the collection. The caller confirms first; there is
// no undo.
func (c *Controller) ClearAll() {
	c.store.ClearAll()
}

// SortedEvents is the read surface for renderers.
func (c *Controller) SortedEvents() []*event.Event {
	return c.store.Events()
}

// HasEventsOn reports whether the given day of the browsed month has
// events.
func (c *Controller) HasEventsOn(day int) bool {
	return c.store.HasEventsOn(event.NewDate(c.view.Year, c.view.Month, day))
}

// ExportEvents serializes the collection for the file I/O layer.
func (c *Controller) ExportEvents() (store.Blob, error) {
	return c.store.Export()
}

// ImportEvents appends the records in the payload to the collection.
func (c *Controller) ImportEvents(payload []byte) (int, error) {
	return c.store.Import(payload)
}
