package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/dategrid"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/ui/calendar"
)

// Model states
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeHelp
)

type field int

const (
	fieldText field = iota
	fieldHours
	fieldMinutes
	fieldCategory
	fieldPriority
	fieldCount
)

// Model contains UI state. The controller owns the month being browsed
// and the popup transitions; the model only tracks cursors and inputs.
type Model struct {
	ctrl *controller.Controller
	mode mode

	cursor  int // day under the cursor in the browsed month
	evtIdx  int // selected event within the cursor day
	editing string

	field   field
	text    textinput.Model
	hours   textinput.Model
	minutes textinput.Model
	catIdx  int
	priIdx  int

	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the store, with the cursor on today.
func New(s *store.Store) Model {
	ctrl := controller.New(s)

	text := textinput.New()
	text.Placeholder = "What's happening?"
	text.CharLimit = event.MaxTextLen
	text.Prompt = ""

	hours := textinput.New()
	hours.Placeholder = "00"
	hours.CharLimit = 2
	hours.Prompt = ""

	minutes := textinput.New()
	minutes.Placeholder = "00"
	minutes.CharLimit = 2
	minutes.Prompt = ""

	return Model{
		ctrl:    ctrl,
		mode:    modeBrowse,
		cursor:  ctrl.Today().Day,
		text:    text,
		hours:   hours,
		minutes: minutes,
		status:  "h/l day, j/k week, H/L month, enter add, e edit, d delete, ? help, q quit",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeBrowse
			}
		case modeForm:
			return m.updateForm(msg)
		case modeBrowse:
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			case "?":
				m.mode = modeHelp
			case "h", "left":
				m.moveCursor(-1)
			case "l", "right":
				m.moveCursor(1)
			case "k", "up":
				m.moveCursor(-7)
			case "j", "down":
				m.moveCursor(7)
			case "H", "pgup":
				m.ctrl.PrevMonth()
				m.clampCursor()
			case "L", "pgdown":
				m.ctrl.NextMonth()
				m.clampCursor()
			case "t":
				today := m.ctrl.Today()
				m.ctrl.ShowMonth(today.Year, today.Month)
				m.cursor = today.Day
				m.evtIdx = 0
			case "J":
				if n := len(m.dayEvents()); n > 0 {
					m.evtIdx = (m.evtIdx + 1) % n
				}
			case "K":
				if n := len(m.dayEvents()); n > 0 {
					m.evtIdx = (m.evtIdx + n - 1) % n
				}
			case "enter", "o":
				if err := m.ctrl.DayClick(m.cursor); err != nil {
					m.status = err.Error()
					break
				}
				m.openForm(nil)
			case "e", "i":
				if e := m.currentEvent(); e != nil {
					if err := m.ctrl.EditEvent(e.ID); err != nil {
						m.status = err.Error()
						break
					}
					m.openForm(e)
				}
			case "d", "x":
				if e := m.currentEvent(); e != nil {
					m.ctrl.DeleteEvent(e.ID)
					m.status = "Deleted"
					m.evtIdx = 0
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "esc":
		m.ctrl.ClosePopup()
		m.mode = modeBrowse
		m.status = "Cancelled"
	case "tab", "down":
		m.focusField((m.field+1)%fieldCount, &cmds)
	case "shift+tab", "up":
		m.focusField((m.field+fieldCount-1)%fieldCount, &cmds)
	case "enter":
		e, err := m.ctrl.SubmitEvent(controller.Form{
			Text:     m.text.Value(),
			Hours:    m.hours.Value(),
			Minutes:  m.minutes.Value(),
			Category: string(event.AllCategories()[m.catIdx]),
			Priority: string(event.AllPriorities()[m.priIdx]),
		})
		if err != nil {
			// Validation keeps the popup open so the message shows inline.
			m.status = err.Error()
			break
		}
		m.mode = modeBrowse
		m.cursor = e.Date.Day
		if m.editing == "" {
			m.status = "Added"
		} else {
			m.status = "Saved"
		}
	default:
		key := msg.String()
		if (key == "left" || key == "right") && (m.field == fieldCategory || m.field == fieldPriority) {
			delta := 1
			if key == "left" {
				delta = -1
			}
			m.cycleOption(delta)
			break
		}
		var cmd tea.Cmd
		switch m.field {
		case fieldText:
			m.text, cmd = m.text.Update(msg)
		case fieldHours:
			m.hours, cmd = m.hours.Update(msg)
		case fieldMinutes:
			m.minutes, cmd = m.minutes.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return *m, tea.Batch(cmds...)
}

func (m *Model) openForm(e *event.Event) {
	m.mode = modeForm
	m.editing = ""
	m.text.SetValue("")
	m.hours.SetValue("")
	m.minutes.SetValue("")
	m.catIdx = indexOfCategory(event.ParseCategory(""))
	m.priIdx = indexOfPriority(event.ParsePriority(""))
	if e != nil {
		m.editing = e.ID
		m.text.SetValue(e.Text)
		m.hours.SetValue(e.Time.Hours)
		m.minutes.SetValue(e.Time.Minutes)
		m.catIdx = indexOfCategory(e.Category)
		m.priIdx = indexOfPriority(e.Priority)
	}
	m.text.CursorEnd()
	var cmds []tea.Cmd
	m.focusField(fieldText, &cmds)
	m.status = "tab next field, enter save, esc cancel"
}

func (m *Model) focusField(f field, cmds *[]tea.Cmd) {
	m.field = f
	m.text.Blur()
	m.hours.Blur()
	m.minutes.Blur()
	var cmd tea.Cmd
	switch f {
	case fieldText:
		cmd = m.text.Focus()
	case fieldHours:
		cmd = m.hours.Focus()
	case fieldMinutes:
		cmd = m.minutes.Focus()
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) cycleOption(delta int) {
	switch m.field {
	case fieldCategory:
		n := len(event.AllCategories())
		m.catIdx = (m.catIdx + delta + n) % n
	case fieldPriority:
		n := len(event.AllPriorities())
		m.priIdx = (m.priIdx + delta + n) % n
	}
}

func (m *Model) moveCursor(delta int) {
	view := m.ctrl.View()
	last := dategrid.DaysInMonth(view.Year, view.Month)
	next := m.cursor + delta
	if next < 1 {
		next = 1
	}
	if next > last {
		next = last
	}
	if next != m.cursor {
		m.cursor = next
		m.evtIdx = 0
	}
}

func (m *Model) clampCursor() {
	view := m.ctrl.View()
	if last := dategrid.DaysInMonth(view.Year, view.Month); m.cursor > last {
		m.cursor = last
	}
	m.evtIdx = 0
}

func (m *Model) cursorDate() event.Date {
	view := m.ctrl.View()
	return event.NewDate(view.Year, view.Month, m.cursor)
}

func (m *Model) dayEvents() []*event.Event {
	date := m.cursorDate()
	var out []*event.Event
	for _, e := range m.ctrl.SortedEvents() {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out
}

func (m *Model) currentEvent() *event.Event {
	events := m.dayEvents()
	if len(events) == 0 {
		return nil
	}
	if m.evtIdx >= len(events) {
		m.evtIdx = len(events) - 1
	}
	return events[m.evtIdx]
}

// View renders the month grid, the cursor day's events, and the form
// overlay when it is open.
func (m Model) View() string {
	view := m.ctrl.View()
	today := m.ctrl.Today()

	var days []calendar.Day
	for d := 1; d <= dategrid.DaysInMonth(view.Year, view.Month); d++ {
		days = append(days, calendar.Day{
			Day:        d,
			HasEvents:  m.ctrl.HasEventsOn(d),
			IsToday:    event.NewDate(view.Year, view.Month, d).Equal(today),
			IsSelected: d == m.cursor,
		})
	}
	grid := calendar.Render(view.Year, view.Month, days, calendar.DefaultOptions())

	body := grid + "\n\n" + m.viewDay()
	if m.mode == modeForm {
		body += "\n\n" + m.viewForm()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l day, j/k week, H/L month, t today, J/K pick event, enter add, e edit, d delete, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.status)
	return body + "\n\n" + status
}

func (m Model) viewDay() string {
	title := lipgloss.NewStyle().Bold(true).Render(event.FormatDate(m.cursorDate()))
	events := m.dayEvents()
	if len(events) == 0 {
		return title + "\n" + lipgloss.NewStyle().Faint(true).Render("  no events")
	}

	lines := []string{title}
	for i, e := range events {
		indicator := "  "
		if m.mode == modeBrowse && i == m.evtIdx {
			indicator = "→ "
		}
		line := fmt.Sprintf("%s%s %s (%s, %s)", indicator, e.Time, e.Text,
			event.CategoryDetails(string(e.Category)).Label, event.PriorityDetails(string(e.Priority)).Label)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewForm() string {
	label := func(f field, s string) string {
		if m.field == f {
			return lipgloss.NewStyle().Bold(true).Render("» " + s)
		}
		return "  " + s
	}

	title := "New event"
	if m.editing != "" {
		title = "Edit event"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s on %s", title, m.ctrl.View().Selected)),
		label(fieldText, "Text:     ") + m.text.View(),
		label(fieldHours, "Hours:    ") + m.hours.View(),
		label(fieldMinutes, "Minutes:  ") + m.minutes.View(),
		label(fieldCategory, "Category: ") + event.CategoryDetails(string(event.AllCategories()[m.catIdx])).Label,
		label(fieldPriority, "Priority: ") + event.PriorityDetails(string(event.AllPriorities()[m.priIdx])).Label,
	}

	panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	return panel.Render(strings.Join(lines, "\n"))
}

func indexOfCategory(c event.Category) int {
	for i, d := range event.AllCategories() {
		if d == c {
			return i
		}
	}
	return 0
}

func indexOfPriority(p event.Priority) int {
	for i, d := range event.AllPriorities() {
		if d == p {
			return i
		}
	}
	return 0
}

// Run launches the interactive calendar.
func Run(s *store.Store) error {
	if s == nil {
		return errors.New("can not start ui, no store")
	}
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
