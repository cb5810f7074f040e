package handle

import "github.com/matt-g-everett/keyline/timeline"

// TrackName returns the track's name, or "" for a bad handle.
func (r *Registry) TrackName(h Track) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return ""
	}
	return tr.Name()
}

// TrackNodeCount returns the number of nodes, or 0 for a bad handle.
func (r *Registry) TrackNodeCount(h Track) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return 0
	}
	return tr.Len()
}

// TrackAddNode inserts a node. It returns false for time 0, an occupied
// time, an unknown interpolation or a bad handle.
func (r *Registry) TrackAddNode(h Track, time uint32, value float64, interp timeline.Interp) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return false
	}
	return tr.Add(time, value, interp) == nil
}

// TrackDeleteNode removes the node at time.
func (r *Registry) TrackDeleteNode(h Track, time uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return false
	}
	return tr.Delete(time) == nil
}

// TrackUpdateNode replaces the node at time with a copy of n.
func (r *Registry) TrackUpdateNode(h Track, time uint32, n Node) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return false
	}
	node, ok := r.nodes.get(n)
	if !ok {
		return false
	}
	return tr.Update(time, *node) == nil
}

// TrackGetNode returns a new node handle holding a copy of the node at time,
// or 0. The caller must free it.
func (r *Registry) TrackGetNode(h Track, time uint32) Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return 0
	}
	n, ok := tr.Get(time)
	if !ok {
		return 0
	}
	return r.nodes.insert(n)
}

// TrackValueAt evaluates the track at time, or returns 0 for a bad handle.
func (r *Registry) TrackValueAt(h Track, time uint32) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return 0
	}
	return tr.ValueAt(time)
}
