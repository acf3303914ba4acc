package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/event"
)

// ErrImport signals a malformed import payload. The collection is left
// unmodified when it is returned.
var ErrImport = errors.New("store: malformed import payload")

// Blob is an exported collection ready to hand to the file I/O layer.
type Blob struct {
	Filename string
	MIME     string
	Data     []byte
}

// Export serializes the full collection to a pretty-printed JSON blob
// named with the current date.
func (s *Store) Export() (Blob, error) {
	events := s.Events()
	if events == nil {
		events = []*event.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return Blob{}, fmt.Errorf("store: export: %w", err)
	}
	return Blob{
		Filename: fmt.Sprintf("calendar_events_%s.json", s.now().Format("2006-01-02")),
		MIME:     "application/json",
		Data:     data,
	}, nil
}

// Import parses the payload as an array of event-like records and
// appends them to the collection. Records keep their id when present;
// otherwise one is synthesized from the timestamp plus a random
// fragment so records imported in the same instant stay distinct.
// Records without a date land on today. Records without text are
// malformed. Any malformed content returns ErrImport without mutating
// the store. Returns the number of events added.
func (s *Store) Import(payload []byte) (int, error) {
	var incoming []*event.Event
	if err := json.Unmarshal(payload, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImport, err)
	}

	seen := make(map[string]bool, len(s.events)+len(incoming))
	for _, e := range s.events {
		seen[e.ID] = true
	}

	today := event.DateOf(s.now())
	accepted := make([]*event.Event, 0, len(incoming))
	for i, e := range incoming {
		if e == nil {
			return 0, fmt.Errorf("%w: record %d is null", ErrImport, i)
		}
		text, err := event.ValidateText(e.Text)
		if err != nil {
			return 0, fmt.Errorf("%w: record %d has no text", ErrImport, i)
		}
		e.Text = text
		if e.Date.IsZero() {
			e.Date = today
		}
		e.Time = event.ValidateTime(e.Time.Hours, e.Time.Minutes)
		e.Category = event.ParseCategory(string(e.Category))
		e.Priority = event.ParsePriority(string(e.Priority))
		if e.ID == "" || seen[e.ID] {
			e.ID = s.importID()
		}
		seen[e.ID] = true
		accepted = append(accepted, e)
	}

	// Kept numeric ids must advance the creation counter, or a later
	// Create landing on the same millisecond would reuse the id.
	for _, e := range accepted {
		if n, err := strconv.ParseInt(e.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}

	s.events = append(s.events, accepted...)
	s.persist()
	return len(accepted), nil
}

// importID synthesizes a timestamp-plus-randomizer id so bulk imports
// stay unique even within one millisecond.
func (s *Store) importID() string {
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), uuid.NewString()[:8])
}
