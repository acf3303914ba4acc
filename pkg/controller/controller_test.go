package controller

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

type memoryKV struct {
	data map[string][]byte
}

func (m *memoryKV) Read(key string) ([]byte, error) { return m.data[key], nil }
func (m *memoryKV) Write(key string, val []byte) error {
	m.data[key] = val
	return nil
}
func (m *memoryKV) Erase(key string) error { delete(m.data, key); return nil }
func (m *memoryKV) Has(key string) bool    { _, ok := m.data[key]; return ok }

// today in every test below.
var today = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

func newTestController() *Controller {
	s := store.New(&memoryKV{data: make(map[string][]byte)})
	return NewWithClock(s, func() time.Time { return today })
}

func TestNavigationIsCyclic(t *testing.T) {
	c := newTestController()
	start := c.View()

	for i := 0; i < 12; i++ {
		c.NextMonth()
	}
	if v := c.View(); v.Month != start.Month || v.Year != start.Year+1 {
		t.Fatalf("12 x NextMonth = %s %d, want %s %d", v.Month, v.Year, start.Month, start.Year+1)
	}
	for i := 0; i < 24; i++ {
		c.PrevMonth()
	}
	if v := c.View(); v.Month != start.Month || v.Year != start.Year-1 {
		t.Fatalf("24 x PrevMonth from +1y = %s %d, want %s %d", v.Month, v.Year, start.Month, start.Year-1)
	}
}

func TestYearWrapsAtDecemberBoundary(t *testing.T) {
	c := newTestController()
	c.ShowMonth(2025, time.December)
	c.NextMonth()
	if v := c.View(); v.Month != time.January || v.Year != 2026 {
		t.Fatalf("Dec -> %s %d, want January 2026", v.Month, v.Year)
	}
	c.PrevMonth()
	if v := c.View(); v.Month != time.December || v.Year != 2025 {
		t.Fatalf("Jan -> %s %d, want December 2025", v.Month, v.Year)
	}
}

func TestDayClickRefusesPastDates(t *testing.T) {
	c := newTestController()
	before := c.View()

	if err := c.DayClick(14); !errors.Is(err, ErrPastDate) {
		t.Fatalf("yesterday: err = %v, want ErrPastDate", err)
	}
	if v := c.View(); v != before {
		t.Fatalf("refused transition changed the view state: %+v", v)
	}

	if err := c.DayClick(15); err != nil {
		t.Fatalf("today must be accepted: %v", err)
	}
	if v := c.View(); v.State != PopupOpen || !v.Selected.Equal(event.NewDate(2025, time.June, 15)) {
		t.Fatalf("view after today click: %+v", v)
	}

	c.ClosePopup()
	if err := c.DayClick(16); err != nil {
		t.Fatalf("future day must be accepted: %v", err)
	}
}

func TestDayClickPastMonthEntirelyRefused(t *testing.T) {
	c := newTestController()
	c.PrevMonth()
	if err := c.DayClick(31); !errors.Is(err, ErrPastDate) {
		t.Fatalf("last month: err = %v, want ErrPastDate", err)
	}
}

func TestSubmitCreatesEvent(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}

	e, err := c.SubmitEvent(Form{Text: "dentist", Hours: "9", Minutes: "30", Category: "health", Priority: "HIGH"})
	if err != nil {
		t.Fatalf("SubmitEvent: %v", err)
	}
	if e.ID == "" || !e.Date.Equal(event.NewDate(2025, time.June, 20)) {
		t.Fatalf("created event: %+v", e)
	}
	if e.Time != (event.Time{Hours: "09", Minutes: "30"}) || e.Category != event.CategoryHealth || e.Priority != event.PriorityHigh {
		t.Fatalf("form not normalized: %+v", e)
	}
	if c.View().State != Browsing {
		t.Fatalf("submit must return to Browsing")
	}
	if !c.HasEventsOn(20) {
		t.Fatalf("HasEventsOn(20) = false after create")
	}
}

func TestSubmitEmptyTextIsRejected(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}
	before := len(c.SortedEvents())

	if _, err := c.SubmitEvent(Form{Text: "   "}); !errors.Is(err, event.ErrTextRequired) {
		t.Fatalf("err = %v, want ErrTextRequired", err)
	}
	if len(c.SortedEvents()) != before {
		t.Fatalf("rejected submit changed the collection")
	}
	if c.View().State != PopupOpen {
		t.Fatalf("popup must stay open so the form can surface the error")
	}
}

func TestEditFlow(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}
	created, err := c.SubmitEvent(Form{Text: "old text", Hours: "10", Minutes: "00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Browse far away; editing still works.
	c.NextMonth()
	c.NextMonth()
	if err := c.EditEvent(created.ID); err != nil {
		t.Fatalf("EditEvent: %v", err)
	}
	v := c.View()
	if v.State != PopupOpen || v.Editing == nil || v.Editing.ID != created.ID {
		t.Fatalf("view after EditEvent: %+v", v)
	}
	if !v.Selected.Equal(created.Date) {
		t.Fatalf("Selected should follow the edited event, got %v", v.Selected)
	}

	updated, err := c.SubmitEvent(Form{Text: "new text", Hours: "11", Minutes: "15", Priority: "low"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("edit must preserve the id: %q -> %q", created.ID, updated.ID)
	}
	if updated.Text != "new text" || updated.Priority != event.PriorityLow {
		t.Fatalf("updated event: %+v", updated)
	}
	if !updated.Date.Equal(event.NewDate(2025, time.June, 20)) {
		t.Fatalf("date must be preserved when the form has none: %v", updated.Date)
	}
	if len(c.SortedEvents()) != 1 {
		t.Fatalf("edit must not create a second event")
	}
}

func TestEditCanMoveTheDate(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}
	created, err := c.SubmitEvent(Form{Text: "movable"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := c.EditEvent(created.ID); err != nil {
		t.Fatalf("EditEvent: %v", err)
	}
	moved := event.NewDate(2025, time.July, 4)
	updated, err := c.SubmitEvent(Form{Text: "movable", Date: &moved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Date.Equal(moved) {
		t.Fatalf("date not moved: %v", updated.Date)
	}
}

func TestEditStaleID(t *testing.T) {
	c := newTestController()
	if err := c.EditEvent("9999"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
	if c.View().State != Browsing {
		t.Fatalf("stale edit must not open the popup")
	}
}

func TestClosePopupDiscardsEditingTarget(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}
	created, err := c.SubmitEvent(Form{Text: "something"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.EditEvent(created.ID); err != nil {
		t.Fatalf("EditEvent: %v", err)
	}

	c.ClosePopup()
	v := c.View()
	if v.State != Browsing || v.Editing != nil {
		t.Fatalf("ClosePopup left %+v", v)
	}
	// The committed event is untouched.
	if got := c.SortedEvents(); len(got) != 1 || got[0].Text != "something" {
		t.Fatalf("ClosePopup must not roll back committed mutations")
	}
}

func TestDeleteEvent(t *testing.T) {
	c := newTestController()
	if err := c.DayClick(20); err != nil {
		t.Fatalf("DayClick: %v", err)
	}
	created, err := c.SubmitEvent(Form{Text: "to delete"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !c.DeleteEvent(created.ID) {
		t.Fatalf("expected removal")
	}
	if c.DeleteEvent(created.ID) {
		t.Fatalf("second delete must be a no-op")
	}
}
