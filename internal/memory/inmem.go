package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// InMem is an in-process Store, suitable for tests and single-run sessions.
type InMem struct {
	mu   sync.RWMutex
	data map[Namespace]map[string]Record
}

// NewInMem creates an empty in-memory store.
func NewInMem() *InMem {
	return &InMem{data: make(map[Namespace]map[string]Record)}
}

// Search returns all records in the namespace, sorted by key.
func (s *InMem) Search(_ context.Context, ns Namespace) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, r := range s.data[ns] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Get returns the record under key, or nil when absent.
func (s *InMem) Get(_ context.Context, ns Namespace, key string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data[ns][key]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Put stores value under key, overwriting any previous record.
func (s *InMem) Put(_ context.Context, ns Namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory: marshal value: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[ns] == nil {
		s.data[ns] = make(map[string]Record)
	}
	s.data[ns][key] = Record{Key: key, Value: raw, UpdatedAt: time.Now()}
	return nil
}

var _ Store = (*InMem)(nil)
