// Package registry provides a thread-safe registry of live sessions.
package registry

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrFull      = errors.New("session limit reached")
	ErrDuplicate = errors.New("session id already registered")
)

// Registry maps session IDs to sessions.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	limit int
}

// New creates a registry holding at most limit entries. A limit of zero or
// less means unlimited.
func New[T any](limit int) *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
		limit: limit,
	}
}

// NewID generates a fresh session ID.
func NewID() string {
	return uuid.New().String()
}

// Add registers v under id.
func (r *Registry[T]) Add(id string, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		return errors.Wrapf(ErrDuplicate, "id %s", id)
	}
	if r.limit > 0 && len(r.items) >= r.limit {
		return errors.Wrapf(ErrFull, "limit %d", r.limit)
	}
	r.items[id] = v
	return nil
}

// Get retrieves a session by ID.
func (r *Registry[T]) Get(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return v, nil
}

// Remove unregisters and returns a session.
func (r *Registry[T]) Remove(id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(r.items, id)
	return v, nil
}

// RemoveAll unregisters and returns every session.
func (r *Registry[T]) RemoveAll() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]T, 0, len(r.items))
	for id, v := range r.items {
		result = append(result, v)
		delete(r.items, id)
	}
	return result
}

// All returns all sessions.
func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.items))
	for _, v := range r.items {
		result = append(result, v)
	}
	return result
}

// Count returns the number of sessions.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Limit returns the maximum number of sessions.
func (r *Registry[T]) Limit() int {
	return r.limit
}
