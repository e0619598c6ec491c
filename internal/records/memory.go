package records

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps records in-memory. Returned records are copies.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*Record
	bySlug  map[string]uuid.UUID
	nowFunc func() time.Time
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[uuid.UUID]*Record),
		bySlug:  make(map[string]uuid.UUID),
		nowFunc: time.Now,
	}
}

func (m *MemoryRepository) Create(_ context.Context, record *Record) (*Record, error) {
	if record == nil || strings.TrimSpace(record.Slug) == "" {
		return nil, ErrSlugRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bySlug[record.Slug]; exists {
		return nil, ErrSlugExists
	}

	stored := record.Clone()
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	now := m.nowFunc().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	m.byID[stored.ID] = stored
	m.bySlug[stored.Slug] = stored.ID
	return stored.Clone(), nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: id.String()}
	}
	return record.Clone(), nil
}

func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: slug}
	}
	return m.byID[id].Clone(), nil
}

func (m *MemoryRepository) Update(_ context.Context, record *Record) (*Record, error) {
	if record == nil {
		return nil, &NotFoundError{Resource: "record"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: record.ID.String()}
	}
	if record.Slug != existing.Slug {
		if _, taken := m.bySlug[record.Slug]; taken {
			return nil, ErrSlugExists
		}
		delete(m.bySlug, existing.Slug)
		m.bySlug[record.Slug] = record.ID
	}

	stored := record.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = m.nowFunc().UTC()
	m.byID[stored.ID] = stored
	return stored.Clone(), nil
}

func (m *MemoryRepository) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.byID))
	for _, record := range m.byID {
		out = append(out, record.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}
