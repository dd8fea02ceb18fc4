// Package navigation keeps each session's bounded "recent pages" history.
package navigation

import (
	"encoding/json"
	"sync"
	"time"
)

// MaxEntries bounds the history length.
const MaxEntries = 10

// Location is a routing target as reported by the client router.
type Location struct {
	Pathname string
	Search   string
	Hash     string
	State    json.RawMessage
}

// Href joins the location parts into the entry key.
func (l Location) Href() string {
	return l.Pathname + l.Search + l.Hash
}

// Entry is one tracked location with derived display metadata.
type Entry struct {
	ID        string          `json:"id"`
	Pathname  string          `json:"pathname"`
	Search    string          `json:"search"`
	Hash      string          `json:"hash"`
	State     json.RawMessage `json:"state,omitempty"`
	Label     string          `json:"label"`
	Title     string          `json:"title,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Location returns the routing target the entry was recorded for.
func (e Entry) Location() Location {
	return Location{Pathname: e.Pathname, Search: e.Search, Hash: e.Hash, State: e.State}
}

// Navigator is the routing collaborator that performs programmatic navigation.
type Navigator interface {
	Navigate(to string, state json.RawMessage, replace bool) error
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithCapacity overrides MaxEntries. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// Tracker owns one session's history. Each mutation is applied atomically,
// so concurrent location changes never interleave.
type Tracker struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	now      func() time.Time
}

// NewTracker builds a tracker seeded with the initial location.
func NewTracker(seed Location, title string, opts ...Option) *Tracker {
	t := &Tracker{capacity: MaxEntries, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	t.entries = []Entry{t.entryFor(seed, title)}
	return t
}

func (t *Tracker) entryFor(loc Location, title string) Entry {
	return Entry{
		ID:        loc.Href(),
		Pathname:  loc.Pathname,
		Search:    loc.Search,
		Hash:      loc.Hash,
		State:     loc.State,
		Label:     Label(loc.Pathname, title),
		Title:     title,
		Timestamp: t.now(),
	}
}

// OnLocationChange records a completed navigation. Revisiting a known entry
// refreshes it and drops every entry recorded after it.
func (t *Tracker) OnLocationChange(loc Location, title string) Entry {
	entry := t.entryFor(loc, title)

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.entries {
		if t.entries[i].ID == entry.ID {
			t.entries[i] = entry
			t.entries = t.entries[:i+1]
			return entry
		}
	}

	t.entries = append(t.entries, entry)
	if over := len(t.entries) - t.capacity; over > 0 {
		t.entries = append([]Entry(nil), t.entries[over:]...)
	}
	return entry
}

// NavigateTo asks the router to move to entry. History changes once the
// router reports the resulting location change.
func (t *Tracker) NavigateTo(nav Navigator, entry Entry) error {
	return nav.Navigate(entry.Location().Href(), entry.State, false)
}

// ClearHistory keeps only the current entry.
func (t *Tracker) ClearHistory() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.entries) == 0 {
		return
	}
	t.entries = []Entry{t.entries[len(t.entries)-1]}
}

// Entries returns a copy of the history, oldest first.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Current returns the most recent entry.
func (t *Tracker) Current() (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// Lookup finds an entry by id.
func (t *Tracker) Lookup(id string) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Len reports the number of entries.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
