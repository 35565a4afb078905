package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/pkg/clock"
)

type entry struct {
	catalog   *armory.Catalog
	expiresAt time.Time
}

// InMemoryRepository implements Repository for the lifetime of the process.
// Stored catalogs are shared, callers must not modify them.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entry
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository. A nil clock uses the real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]entry),
		clock: c,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a catalog by key
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	e, ok := r.store[input.Key]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("catalog %s not found", input.Key)
	}
	if !e.expiresAt.IsZero() && r.clock.Now().After(e.expiresAt) {
		r.mu.Lock()
		delete(r.store, input.Key)
		r.mu.Unlock()
		return nil, errors.NotFoundf("catalog %s has expired", input.Key)
	}

	return &GetOutput{Catalog: e.catalog}, nil
}

// Put stores a catalog
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	e := entry{catalog: input.Catalog}
	if input.TTL > 0 {
		e.expiresAt = r.clock.Now().Add(input.TTL)
	}

	r.mu.Lock()
	r.store[input.Key] = e
	r.mu.Unlock()

	return &PutOutput{}, nil
}
