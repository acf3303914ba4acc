// Package store owns the event collection: all mutation goes through
// it, and every mutation is followed by a fire-and-forget write of the
// full collection to a key-value slot.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"tableflip.dev/agenda/pkg/event"
)

// Slot is the key-value location holding the serialized collection.
const Slot = "calendarEvents"

// ErrNotFound signals an update or lookup referencing a stale event id.
var ErrNotFound = errors.New("store: event not found")

// KV is the injected key-value persistence capability. *diskv.Diskv
// satisfies it directly; tests substitute an in-memory map.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
}

// Store is the in-memory ordered event collection plus its persistence
// slot. In-memory state is the source of truth for the session: a
// failed save is logged and never rolled back.
type Store struct {
	kv     KV
	events []*event.Event
	lastID int64
	now    func() time.Time
}

// New builds a store over the given KV and loads the persisted slot.
// A missing slot yields an empty collection; malformed records are
// skipped and logged, never surfaced to the caller.
func New(kv KV) *Store {
	s := &Store{kv: kv, now: time.Now}
	s.load()
	return s
}

// Open wires a diskv-backed store from config. Pass nil to resolve the
// config from the environment.
func Open(cfg Config) (*Store, error) {
	kv, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	return New(kv), nil
}

// Create assigns a fresh unique id, appends the event, and persists.
// Never fails on valid input; text and time are pre-validated by the
// caller per the form rules.
func (s *Store) Create(date event.Date, t event.Time, text string, category event.Category, priority event.Priority) *event.Event {
	e := event.New(date, t, text, category, priority)
	e.ID = s.nextID()
	s.events = append(s.events, e)
	s.persist()
	return e
}

// Update replaces the fields of the event matching id with the patch,
// preserving the id. The date is replaced only when the patch
// intentionally carries one. Returns ErrNotFound for a stale id.
func (s *Store) Update(id string, patch event.Event) (*event.Event, error) {
	e, ok := s.find(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !patch.Date.IsZero() {
		e.Date = patch.Date
	}
	e.Time = event.ValidateTime(patch.Time.Hours, patch.Time.Minutes)
	e.Text = patch.Text
	e.Category = event.ParseCategory(string(patch.Category))
	e.Priority = event.ParsePriority(string(patch.Priority))
	s.persist()
	return e, nil
}

// Delete removes the event matching id and reports whether a removal
// occurred. Idempotent: a stale id is a no-op, not an error.
func (s *Store) Delete(id string) bool {
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// ClearAll empties the collection. Destructive and irreversible; the
// caller is responsible for confirmation.
func (s *Store) ClearAll() {
	s.events = nil
	s.persist()
}

// Get returns the event with the given id.
func (s *Store) Get(id string) (*event.Event, bool) {
	return s.find(id)
}

// Len returns the collection size.
func (s *Store) Len() int {
	return len(s.events)
}

// Events returns the collection sorted by date, then priority rank,
// then time-of-day. The returned slice is the caller's to mutate.
func (s *Store) Events() []*event.Event {
	out := make([]*event.Event, len(s.events))
	copy(out, s.events)
	Sort(out)
	return out
}

// HasEventsOn reports whether at least one stored event falls on the
// given calendar date.
func (s *Store) HasEventsOn(d event.Date) bool {
	for _, e := range s.events {
		if e.Date.Equal(d) {
			return true
		}
	}
	return false
}

// Sort orders events in place by the three-key comparator: ascending
// calendar date, then priority rank (high < medium < low), then
// time-of-day. Stable: ties keep their relative order.
func Sort(events []*event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.Time.MinuteOfDay() < b.Time.MinuteOfDay()
	})
}

// nextID returns a millisecond timestamp id, bumped when two creations
// land in the same instant so ids stay unique and monotonic.
func (s *Store) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) find(id string) (*event.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// persist writes the full collection to the slot. Fire-and-forget: a
// failure is logged and the in-memory mutation stands.
func (s *Store) persist() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(s.events)
	if err != nil {
		slog.Error("store: marshal events", "error", err)
		return
	}
	if err := s.kv.Write(Slot, data); err != nil {
		slog.Error("store: write slot", "slot", Slot, "error", err)
	}
}

func (s *Store) load() {
	if s.kv == nil || !s.kv.Has(Slot) {
		return
	}
	data, err := s.kv.Read(Slot)
	if err != nil {
		slog.Error("store: read slot", "slot", Slot, "error", err)
		return
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Error("store: corrupt slot, starting empty", "slot", Slot, "error", err)
		return
	}
	events := make([]*event.Event, 0, len(raw))
	var last int64
	for i, r := range raw {
		var e event.Event
		if err := json.Unmarshal(r, &e); err != nil {
			slog.Warn("store: skipping malformed record", "index", i, "error", err)
			continue
		}
		events = append(events, &e)
		if n, err := strconv.ParseInt(e.ID, 10, 64); err == nil && n > last {
			last = n
		}
	}
	s.events = events
	s.lastID = last
}
