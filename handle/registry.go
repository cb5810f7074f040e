// Package handle exposes timelines, tracks, nodes and node cursors through
// opaque integer handles, for hosts that cannot hold Go pointers. Every
// operation accepts stale or zero handles and answers with a neutral value
// instead of failing loudly; error detail goes to the registry's logger.
package handle

import (
	"log"
	"sync"

	"github.com/matt-g-everett/keyline/timeline"
)

// Handle types. The zero value of each is the null handle.
type (
	Timeline uint64
	Track    uint64
	Node     uint64
	Iter     uint64
)

type timelineEntry struct {
	tl     *timeline.Timeline
	tracks map[*timeline.Track]Track
}

type trackEntry struct {
	owner Timeline
	tr    *timeline.Track
}

// An iterEntry is bound to the track revision it was created at.
type iterEntry struct {
	track Track
	rev   uint64
	index int
}

// Registry owns every object reachable through a handle. Calls are
// serialised, since a foreign host may call in from any thread.
type Registry struct {
	mu  sync.Mutex
	log *log.Logger

	timelines arena[Timeline, timelineEntry]
	tracks    arena[Track, trackEntry]
	nodes     arena[Node, timeline.Node]
	iters     arena[Iter, iterEntry]
}

// NewRegistry creates a Registry. Diagnostics go to logger, or to the
// standard logger when it is nil.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{log: logger}
}

func (r *Registry) timeline(h Timeline) (*timelineEntry, bool) {
	return r.timelines.get(h)
}

// track resolves h, dropping it if its track has since been deleted.
func (r *Registry) track(h Track) (*timeline.Track, bool) {
	e, ok := r.tracks.get(h)
	if !ok {
		return nil, false
	}
	te, ok := r.timelines.get(e.owner)
	if ok {
		if cur, found := te.tl.Lookup(e.tr.Name()); found && cur == e.tr {
			return cur, true
		}
		delete(te.tracks, e.tr)
	}
	r.tracks.remove(h)
	return nil, false
}

func (r *Registry) iter(h Iter) (*iterEntry, *timeline.Track, bool) {
	e, ok := r.iters.get(h)
	if !ok {
		return nil, nil, false
	}
	tr, ok := r.track(e.track)
	if !ok || tr.Revision() != e.rev {
		return nil, nil, false
	}
	return e, tr, true
}

func (r *Registry) adopt(tl *timeline.Timeline) Timeline {
	return r.timelines.insert(timelineEntry{
		tl:     tl,
		tracks: make(map[*timeline.Track]Track),
	})
}

// NewTimeline creates an empty timeline.
func (r *Registry) NewTimeline() Timeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.adopt(timeline.New())
}

// FreeTimeline destroys a timeline and invalidates its track handles.
func (r *Registry) FreeTimeline(h Timeline) {
	r.mu.Lock()
	defer r.mu.Unlock()

	te, ok := r.timeline(h)
	if !ok {
		return
	}
	for _, th := range te.tracks {
		r.tracks.remove(th)
	}
	r.timelines.remove(h)
}

// TimelineTrack returns the named track, creating it if needed. Repeated
// calls for the same track return the same handle.
func (r *Registry) TimelineTrack(h Timeline, name string) Track {
	r.mu.Lock()
	defer r.mu.Unlock()

	te, ok := r.timeline(h)
	if !ok {
		return 0
	}
	tr := te.tl.Track(name)
	if th, ok := te.tracks[tr]; ok {
		return th
	}
	th := r.tracks.insert(trackEntry{owner: h, tr: tr})
	te.tracks[tr] = th
	return th
}

// TimelineDeleteTrack removes the named track, reporting whether it existed.
func (r *Registry) TimelineDeleteTrack(h Timeline, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	te, ok := r.timeline(h)
	if !ok {
		return false
	}
	if tr, found := te.tl.Lookup(name); found {
		if th, ok := te.tracks[tr]; ok {
			r.tracks.remove(th)
			delete(te.tracks, tr)
		}
	}
	return te.tl.DeleteTrack(name)
}

// TimelineTrackCount returns the number of tracks, or 0 for a bad handle.
func (r *Registry) TimelineTrackCount(h Timeline) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	te, ok := r.timeline(h)
	if !ok {
		return 0
	}
	return te.tl.Len()
}

// SaveFile writes the timeline to path. Failures are logged.
func (r *Registry) SaveFile(h Timeline, path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	te, ok := r.timeline(h)
	if !ok {
		r.log.Printf("save %s: invalid timeline handle %#x", path, uint64(h))
		return false
	}
	if err := timeline.SaveFile(te.tl, path); err != nil {
		r.log.Printf("save %s: %v", path, err)
		return false
	}
	return true
}

// LoadFile reads a timeline from path, returning 0 on failure. Failures are
// logged.
func (r *Registry) LoadFile(path string) Timeline {
	tl, err := timeline.LoadFile(path)
	if err != nil {
		r.log.Printf("load %s: %v", path, err)
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.adopt(tl)
}
