package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps entries in process memory. Nothing survives Close.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]Entry), now: time.Now}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *MemoryRepository) Put(_ context.Context, entries ...Entry) error {
	for _, e := range entries {
		if strings.TrimSpace(e.Key) == "" {
			return errors.New("storage: entry key is required")
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp := r.now().UTC()
	for _, e := range entries {
		e.UpdatedAt = stamp
		r.entries[e.Key] = e
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, filter EntryListFilter) ([]Entry, error) {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for k, e := range r.entries {
		if strings.HasPrefix(k, filter.Prefix) {
			out = append(out, e)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []Entry{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MemoryRepository) Close() error { return nil }
