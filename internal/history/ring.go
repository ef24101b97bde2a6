package history

import "sync"

// DefaultMax is the ring capacity used when none is configured.
const DefaultMax = 500

// Ring is a bounded, newest-last list of entries. Appending past
// capacity drops the oldest entry. All methods are safe for concurrent
// use; the ring is the single shared mutable structure between
// concurrent dispatches, so it guards itself.
type Ring struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewRing creates a ring with the given capacity. Non-positive values
// fall back to DefaultMax.
func NewRing(max int) *Ring {
	if max <= 0 {
		max = DefaultMax
	}
	return &Ring{max: max}
}

// Append adds an entry, evicting the oldest when the ring is full.
func (r *Ring) Append(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// Annotate merges a streamed response into the entry with the given id.
// Unknown ids are ignored (the entry may have been evicted).
func (r *Ring) Annotate(id, response string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Response = response
			return
		}
	}
}

// Entries returns a copy of the entries, oldest first.
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Max returns the ring capacity.
func (r *Ring) Max() int {
	return r.max
}
