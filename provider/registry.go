package provider

import (
	"sync"

	"github.com/kbukum/spikit/errors"
)

// Registry stores providers in insertion order and resolves request keys to
// the provider(s) that should handle them.
//
// Registration is append-only: providers are never removed or mutated once
// registered. The intended pattern is populate-at-startup, read-thereafter;
// late registration is still safe because every operation takes the internal
// lock (single writer, multiple readers).
type Registry[T Provider] struct {
	mu        sync.RWMutex
	providers []T
}

// NewRegistry creates a new empty Registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{}
}

// Register appends a provider. It never fails and performs no uniqueness
// check: a duplicate name is silently allowed, and Get keeps returning the
// first-registered provider for that name.
func (r *Registry[T]) Register(p T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// RegisterUnique appends a provider, rejecting duplicate names. On failure
// the registry is unchanged.
func (r *Registry[T]) RegisterUnique(p T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := p.Name()
	for _, existing := range r.providers {
		if existing.Name() == name {
			return errors.AlreadyRegistered(name)
		}
	}
	r.providers = append(r.providers, p)
	return nil
}

// Get returns the first-registered provider whose name matches exactly.
// Absence is a normal outcome, reported through ok.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.Name() == name {
			return p, true
		}
	}
	var zero T
	return zero, false
}

// Find returns the first provider (in insertion order) that supports the
// key, ignoring priority. Use for simple, order-sensitive matching.
func (r *Registry[T]) Find(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.Supports(key) {
			return p, true
		}
	}
	var zero T
	return zero, false
}

// FindBest returns the supporting provider with the highest priority.
// Ties break toward the earliest-registered provider, so the total order is
// (priority desc, insertion order asc).
func (r *Registry[T]) FindBest(key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best T
	bestPriority := 0
	found := false
	for _, p := range r.providers {
		if !p.Supports(key) {
			continue
		}
		prio := PriorityOf(p)
		if !found || prio > bestPriority {
			best = p
			bestPriority = prio
			found = true
		}
	}
	return best, found
}

// FindAll returns every provider that supports the key, in insertion order.
// No match yields an empty slice, not an error.
func (r *Registry[T]) FindAll(key string) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]T, 0)
	for _, p := range r.providers {
		if p.Supports(key) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Names returns all registered names in insertion order, duplicates included.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Providers returns all registered providers in insertion order.
func (r *Registry[T]) Providers() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make([]T, len(r.providers))
	copy(cp, r.providers)
	return cp
}

// Contains reports whether a provider with the given name is registered.
func (r *Registry[T]) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of registered providers, duplicates included.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
