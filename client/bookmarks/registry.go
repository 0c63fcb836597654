// Package bookmarks tracks session-local bookmark membership.
package bookmarks

import (
	"strconv"
	"sync"
)

// Key builds the composite bookmark key for a post: the owner's username
// plus the post's position in the feed.
func Key(ownerUsername string, postIndex int) string {
	return ownerUsername + "+" + strconv.Itoa(postIndex)
}

// Registry is a session-scoped set of bookmarked post keys. It holds pure
// local state: no backend calls, nothing persisted.
type Registry struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string]struct{})}
}

// Toggle adds the key if absent and removes it if present. Returns the new
// membership state. Toggling twice returns membership to its original state.
func (r *Registry) Toggle(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keys[key]; ok {
		delete(r.keys, key)
		return false
	}
	r.keys[key] = struct{}{}
	return true
}

// Contains reports whether the key is currently bookmarked.
func (r *Registry) Contains(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.keys[key]
	return ok
}

// Len returns the number of bookmarked keys.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}
