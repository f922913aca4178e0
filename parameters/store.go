package parameters

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/socialpost/socialpost/config"
)

// ErrNotFound is returned when no parameter is registered under a name.
var ErrNotFound = errors.New("parameter not found")

// ErrTypeMismatch is returned by Lookup when a parameter holds a value of another type.
var ErrTypeMismatch = errors.New("parameter type mismatch")

// Store is a flat, concurrency-safe registry of named parameters.
// Lists and mappings are copied on Set and on every read, so callers never share state with the store.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Set registers value under name, replacing any previous value.
func (s *Store) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[name] = copyValue(value)
}

// Get returns the value registered under name.
func (s *Store) Get(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return copyValue(value), nil
}

// Has reports whether name is registered.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[name]

	return ok
}

// Names returns the registered names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered parameters.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// All returns a copy of every parameter.
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make(map[string]any, len(s.values))
	for name, value := range s.values {
		all[name] = copyValue(value)
	}

	return all
}

// Lookup returns the parameter under name as a T.
func Lookup[T any](store *Store, name string) (T, error) {
	var zero T

	value, err := store.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, not %T", ErrTypeMismatch, name, value, zero)
	}

	return typed, nil
}

// copyValue deep-copies lists and mappings while keeping their concrete types,
// so a map[string]any stays a map[string]any for Lookup.
func copyValue(value any) any {
	switch typed := value.(type) {
	case []any:
		list := make([]any, len(typed))
		for i, item := range typed {
			list[i] = copyValue(item)
		}

		return list
	case []string:
		list := make([]string, len(typed))
		copy(list, typed)

		return list
	case map[string]any:
		mapping := make(map[string]any, len(typed))
		for key, item := range typed {
			mapping[key] = copyValue(item)
		}

		return mapping
	case config.Document:
		mapping := make(config.Document, len(typed))
		for key, item := range typed {
			mapping[key] = copyValue(item)
		}

		return mapping
	default:
		return value
	}
}
