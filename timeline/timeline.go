package timeline

import (
	"iter"
	"sort"
)

// Timeline is a collection of tracks keyed by name. Names are opaque; a dot
// in "camera.x" implies no hierarchy.
type Timeline struct {
	tracks map[string]*Track
}

// New creates an empty Timeline.
func New() *Timeline {
	return &Timeline{tracks: make(map[string]*Track)}
}

// Track returns the named track, creating it with its zero node on first use.
func (tl *Timeline) Track(name string) *Track {
	tr, ok := tl.tracks[name]
	if !ok {
		tr = newTrack(name)
		tl.tracks[name] = tr
	}
	return tr
}

// Lookup returns the named track without creating it.
func (tl *Timeline) Lookup(name string) (*Track, bool) {
	tr, ok := tl.tracks[name]
	return tr, ok
}

// DeleteTrack removes the named track, reporting whether it existed.
func (tl *Timeline) DeleteTrack(name string) bool {
	if _, ok := tl.tracks[name]; !ok {
		return false
	}
	delete(tl.tracks, name)
	return true
}

// Len returns the number of tracks.
func (tl *Timeline) Len() int {
	return len(tl.tracks)
}

// Tracks yields every track in no particular order.
func (tl *Timeline) Tracks() iter.Seq[*Track] {
	return func(yield func(*Track) bool) {
		for _, tr := range tl.tracks {
			if !yield(tr) {
				return
			}
		}
	}
}

// Names returns the track names in sorted order.
func (tl *Timeline) Names() []string {
	names := make([]string, 0, len(tl.tracks))
	for name := range tl.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
