package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/dategrid"
	"tableflip.dev/agenda/pkg/store"
)

type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Read(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memoryKV) Write(key string, val []byte) error {
	m.data[key] = val
	return nil
}

func (m *memoryKV) Erase(key string) error {
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Has(key string) bool {
	_, ok := m.data[key]
	return ok
}

func newModel() Model {
	return New(store.New(newMemoryKV()))
}

func press(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestMonthNavigation(t *testing.T) {
	m := newModel()
	start := m.ctrl.View()

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyPgDown})
	if v := m.ctrl.View(); v.Month == start.Month && v.Year == start.Year {
		t.Fatalf("expected pgdown to advance the month, still on %s %d", v.Month, v.Year)
	}

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyPgUp})
	if v := m.ctrl.View(); v.Month != start.Month || v.Year != start.Year {
		t.Fatalf("expected pgup to return to %s %d, got %s %d", start.Month, start.Year, v.Month, v.Year)
	}
}

func TestCursorClampedToMonth(t *testing.T) {
	m := newModel()

	for i := 0; i < 40; i++ {
		m = press(t, m, tea.KeyPressMsg{Text: "h", Code: 'h'})
	}
	if m.cursor != 1 {
		t.Fatalf("expected cursor clamped at day 1, got %d", m.cursor)
	}

	view := m.ctrl.View()
	last := dategrid.DaysInMonth(view.Year, view.Month)
	for i := 0; i < 60; i++ {
		m = press(t, m, tea.KeyPressMsg{Text: "l", Code: 'l'})
	}
	if m.cursor != last {
		t.Fatalf("expected cursor clamped at day %d, got %d", last, m.cursor)
	}
}

func TestAddEventThroughForm(t *testing.T) {
	s := store.New(newMemoryKV())
	m := New(s)

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeForm {
		t.Fatalf("expected enter on today to open the form")
	}

	m.text.SetValue("lunch with sam")
	m.hours.SetValue("12")
	m.minutes.SetValue("30")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeBrowse {
		t.Fatalf("expected submit to return to browsing")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 event after submit, got %d", s.Len())
	}
	e := s.Events()[0]
	if e.Text != "lunch with sam" {
		t.Fatalf("unexpected text %q", e.Text)
	}
	if e.Time.Hours != "12" || e.Time.Minutes != "30" {
		t.Fatalf("unexpected time %s", e.Time)
	}
}

func TestEmptyTextKeepsFormOpen(t *testing.T) {
	s := store.New(newMemoryKV())
	m := New(s)

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeForm {
		t.Fatalf("expected empty text to keep the form open")
	}
	if s.Len() != 0 {
		t.Fatalf("expected no events, got %d", s.Len())
	}
}

func TestPastDayRefused(t *testing.T) {
	m := newModel()

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyPgUp})
	for i := 0; i < 40; i++ {
		m = press(t, m, tea.KeyPressMsg{Text: "h", Code: 'h'})
	}
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeBrowse {
		t.Fatalf("expected click on a past day to be refused")
	}
	if m.status == "" {
		t.Fatalf("expected a refusal message in the status line")
	}
}

func TestEscapeCancelsForm(t *testing.T) {
	m := newModel()

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m.text.SetValue("draft")
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.mode != modeBrowse {
		t.Fatalf("expected escape to close the form")
	}
	if m.ctrl.View().State != controller.Browsing {
		t.Fatalf("expected the popup to be closed")
	}
}
