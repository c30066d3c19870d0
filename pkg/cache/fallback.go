package cache

import (
	"sync"
	"time"
)

// Fallback is a bounded in-process last-known-good map. It is a best
// effort stand-in for the shared store, so eviction is a full clear
// once the capacity is exceeded rather than anything smarter.
type Fallback[T any] struct {
	capacity int
	mu       sync.Mutex
	entries  map[string]fallbackEntry[T]
}

type fallbackEntry[T any] struct {
	value    T
	storedAt time.Time
}

// NewFallback creates a fallback map holding at most capacity entries
func NewFallback[T any](capacity int) *Fallback[T] {
	return &Fallback[T]{
		capacity: capacity,
		entries:  make(map[string]fallbackEntry[T]),
	}
}

// Get returns the stored value for key if present
func (f *Fallback[T]) Get(key string) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, clearing the whole map first if it has
// grown past capacity
func (f *Fallback[T]) Set(key string, value T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.entries) > f.capacity {
		f.entries = make(map[string]fallbackEntry[T])
	}
	f.entries[key] = fallbackEntry[T]{value: value, storedAt: time.Now()}
}

// Len reports the current number of entries
func (f *Fallback[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
