package mazes

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/maze-api/internal/errors"
	"github.com/KirkDiggler/maze-api/internal/pkg/clock"
)

// InMemoryRepository keeps layouts in a map. Used by tests and by the
// server when no redis address is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	clock   clock.Clock
	records map[string]*Record
}

// NewInMemoryRepository creates an empty store. A nil clock uses wall time.
func NewInMemoryRepository(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock:   clk,
		records: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a copy of the record
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	record := cloneRecord(input.Record)
	now := r.clock.Now()
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	r.mu.Lock()
	r.records[record.ID] = record
	r.mu.Unlock()

	return &SaveOutput{Record: cloneRecord(record)}, nil
}

// Get returns a copy of a live record
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	record, ok := r.records[input.ID]
	r.mu.RUnlock()

	if !ok || r.clock.Now().After(record.ExpiresAt) {
		return nil, errors.NotFoundf("maze %s not found", input.ID).WithMeta("maze_id", input.ID)
	}
	return &GetOutput{Record: cloneRecord(record)}, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[input.ID]
	delete(r.records, input.ID)
	return &DeleteOutput{Deleted: ok}, nil
}

// List returns live record IDs and drops expired ones
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	ids := make([]string, 0, len(r.records))
	for id, record := range r.records {
		if now.After(record.ExpiresAt) {
			delete(r.records, id)
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}
