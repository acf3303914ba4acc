package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
)

func TestExportBlob(t *testing.T) {
	s, _ := newTestStore()
	s.Create(event.NewDate(2025, time.June, 10), event.Time{Hours: "09", Minutes: "30"}, "standup", event.CategoryWork, event.PriorityHigh)

	blob, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if blob.Filename != "calendar_events_2025-06-01.json" {
		t.Errorf("Filename = %q", blob.Filename)
	}
	if blob.MIME != "application/json" {
		t.Errorf("MIME = %q", blob.MIME)
	}
	if !strings.Contains(string(blob.Data), "\n") {
		t.Errorf("export should be pretty-printed")
	}

	var back []*event.Event
	if err := json.Unmarshal(blob.Data, &back); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(back) != 1 || back[0].Text != "standup" {
		t.Fatalf("export content = %+v", back)
	}
}

func TestExportEmptyCollectionIsAnArray(t *testing.T) {
	s, _ := newTestStore()
	blob, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.TrimSpace(string(blob.Data)) != "[]" {
		t.Errorf("empty export = %q, want []", blob.Data)
	}
}

func TestImportSynthesizesDistinctIDs(t *testing.T) {
	s, _ := newTestStore()
	existing := s.Create(event.NewDate(2025, time.June, 10), event.Midnight, "existing", event.CategoryWork, event.PriorityMedium)

	payload := []byte(`[
		{"text": "one", "date": "2025-06-11"},
		{"text": "two", "date": "2025-06-11"},
		{"text": "three", "date": "2025-06-11"}
	]`)
	added, err := s.Import(payload)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 3 {
		t.Fatalf("added = %d, want 3", added)
	}

	ids := make(map[string]bool)
	for _, e := range s.Events() {
		if ids[e.ID] {
			t.Fatalf("duplicate id %q", e.ID)
		}
		ids[e.ID] = true
	}
	if !ids[existing.ID] {
		t.Fatalf("import must be additive, existing event lost")
	}
	if len(ids) != 4 {
		t.Fatalf("want 4 distinct ids, got %d", len(ids))
	}
}

func TestImportKeepsProvidedIDs(t *testing.T) {
	s, _ := newTestStore()
	payload := []byte(`[{"id": "imported-1", "text": "kept", "date": "2025-06-11", "time": "9:15"}]`)
	if _, err := s.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}
	e, ok := s.Get("imported-1")
	if !ok {
		t.Fatalf("provided id not reused")
	}
	if e.Time != (event.Time{Hours: "09", Minutes: "15"}) {
		t.Errorf("legacy string time not normalized: %v", e.Time)
	}
}

func TestImportAdvancesIDCounterPastKeptNumericIDs(t *testing.T) {
	s, _ := newTestStore()
	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)
	future := base.Add(time.Second)

	// A kept numeric id equal to a future timestamp must not collide
	// with a creation landing on that same millisecond.
	payload := []byte(fmt.Sprintf(`[{"id": %q, "text": "imported", "date": "2025-06-11"}]`,
		strconv.FormatInt(future.UnixMilli(), 10)))
	if _, err := s.Import(payload); err != nil {
		t.Fatalf("Import: %v", err)
	}

	s.now = fixedClock(future)
	created := s.Create(event.NewDate(2025, time.June, 12), event.Midnight, "created", event.CategoryWork, event.PriorityMedium)

	ids := make(map[string]bool)
	for _, e := range s.Events() {
		if ids[e.ID] {
			t.Fatalf("duplicate id %q after import", e.ID)
		}
		ids[e.ID] = true
	}
	if created.ID == strconv.FormatInt(future.UnixMilli(), 10) {
		t.Fatalf("Create reused the imported id %q", created.ID)
	}
}

func TestImportFailureDoesNotAdvanceIDCounter(t *testing.T) {
	s, _ := newTestStore()
	before := s.lastID

	payload := []byte(`[{"id": "9999999999999", "text": "ok"}, {"text": " "}]`)
	if _, err := s.Import(payload); !errors.Is(err, ErrImport) {
		t.Fatalf("err = %v, want ErrImport", err)
	}
	if s.lastID != before {
		t.Fatalf("failed import moved the id counter: %d -> %d", before, s.lastID)
	}
}

func TestImportDefaultsMissingDateToToday(t *testing.T) {
	s, _ := newTestStore()
	if _, err := s.Import([]byte(`[{"text": "undated"}]`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	today := event.DateOf(s.now())
	if !s.HasEventsOn(today) {
		t.Fatalf("undated record should land on today (%v)", today)
	}
}

func TestImportRejectsMalformedPayloadWithoutMutating(t *testing.T) {
	s, _ := newTestStore()
	s.Create(event.NewDate(2025, time.June, 10), event.Midnight, "existing", event.CategoryWork, event.PriorityMedium)
	before := s.Len()

	for _, payload := range []string{
		`{not json`,
		`{"text": "not an array"}`,
		`[{"date": "2025-06-11"}]`,        // record without text
		`[{"text": "ok"}, {"text": " "}]`, // one bad record poisons the batch
	} {
		if _, err := s.Import([]byte(payload)); !errors.Is(err, ErrImport) {
			t.Errorf("Import(%s) err = %v, want ErrImport", payload, err)
		}
		if s.Len() != before {
			t.Fatalf("failed import mutated the store (payload %s)", payload)
		}
	}
}

func TestImportRoundTripsExport(t *testing.T) {
	s, _ := newTestStore()
	s.Create(event.NewDate(2025, time.June, 10), event.Time{Hours: "09", Minutes: "30"}, "standup", event.CategoryWork, event.PriorityHigh)
	blob, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	other, _ := newTestStore()
	added, err := other.Import(blob.Data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d", added)
	}
	got := other.Events()[0]
	want := s.Events()[0]
	if got.ID != want.ID || !got.Date.Equal(want.Date) || got.Time != want.Time || got.Text != want.Text {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
