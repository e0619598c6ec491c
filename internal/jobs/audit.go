package jobs

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"
)

// AuditEvent records one translation save. Locales lists the language codes
// stored on the attribute after the commit, sorted.
type AuditEvent struct {
	EntityType string
	EntityID   string
	Action     string
	Attribute  string
	Commit     string
	Locales    []string
	OccurredAt time.Time
	Metadata   map[string]any
}

func (e AuditEvent) clone() AuditEvent {
	e.Locales = slices.Clone(e.Locales)
	e.Metadata = maps.Clone(e.Metadata)
	return e
}

// AuditFilter selects events. Zero-valued fields match everything.
type AuditFilter struct {
	EntityID  string
	Attribute string
}

// Matches reports whether event satisfies every set field of f.
func (f AuditFilter) Matches(event AuditEvent) bool {
	if f.EntityID != "" && event.EntityID != f.EntityID {
		return false
	}
	if f.Attribute != "" && event.Attribute != f.Attribute {
		return false
	}
	return true
}

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
	List(ctx context.Context) ([]AuditEvent, error)
	Clear(ctx context.Context) error
}

// InMemoryAuditRecorder keeps events in process memory.
type InMemoryAuditRecorder struct {
	mu     sync.Mutex
	events []AuditEvent
	err    error
}

func NewInMemoryAuditRecorder() *InMemoryAuditRecorder {
	return &InMemoryAuditRecorder{}
}

func (r *InMemoryAuditRecorder) Record(_ context.Context, event AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event.clone())
	return nil
}

// Events is List without a context, for tests and the example binary.
func (r *InMemoryAuditRecorder) Events() []AuditEvent {
	events, _ := r.List(context.Background())
	return events
}

// Fail makes subsequent Record calls return err.
func (r *InMemoryAuditRecorder) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *InMemoryAuditRecorder) List(context.Context) ([]AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AuditEvent, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.clone())
	}
	return out, nil
}

func (r *InMemoryAuditRecorder) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	return nil
}
