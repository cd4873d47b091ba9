package usagetracker

import (
	"sync"
)

// Event records the outcome of one respond request.
type Event struct {
	Category     string
	UsedExternal bool
	FellBack     bool // external was attempted or requested but templates answered
}

// Totals is a point-in-time snapshot of recorded usage. Counters are
// process-local and reset on restart; nothing is persisted.
type Totals struct {
	Requests     int64 `json:"requests"`
	ExternalOK   int64 `json:"external_ok"`
	Fallbacks    int64 `json:"fallbacks"`
	TemplateOnly int64 `json:"template_only"`
}

// Tracker provides methods to record and report usage.
type Tracker interface {
	Record(event Event)
	Snapshot() Totals
}

// New returns the in-memory implementation.
func New() Tracker {
	return &memoryTracker{}
}

type memoryTracker struct {
	mu     sync.Mutex
	totals Totals
}

func (t *memoryTracker) Record(event Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals.Requests++
	switch {
	case event.UsedExternal:
		t.totals.ExternalOK++
	case event.FellBack:
		t.totals.Fallbacks++
	default:
		t.totals.TemplateOnly++
	}
}

func (t *memoryTracker) Snapshot() Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals
}
