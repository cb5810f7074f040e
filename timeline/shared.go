package timeline

import "sync"

// Shared guards a Timeline with a single-writer/multi-reader lock. Timeline
// itself has no synchronisation.
type Shared struct {
	mu sync.RWMutex
	tl *Timeline
}

// NewShared wraps tl. A nil tl starts with an empty timeline.
func NewShared(tl *Timeline) *Shared {
	if tl == nil {
		tl = New()
	}
	return &Shared{tl: tl}
}

// View runs fn under the read lock. fn must not mutate the timeline, which
// includes calling Track for a name that may not exist yet; use Lookup.
func (s *Shared) View(fn func(tl *Timeline)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.tl)
}

// Update runs fn under the write lock and returns its error.
func (s *Shared) Update(fn func(tl *Timeline) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tl)
}

// Replace swaps in a new timeline, e.g. after reloading from disk, and
// returns the old one.
func (s *Shared) Replace(tl *Timeline) *Timeline {
	if tl == nil {
		tl = New()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.tl
	s.tl = tl
	return old
}
