package handle

import "github.com/matt-g-everett/keyline/timeline"

// Node handles own detached copies. Changing one never touches a track;
// pass it to TrackUpdateNode for that.

func (r *Registry) NewNode(time uint32, value float64, interp timeline.Interp) Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nodes.insert(timeline.NewNode(time, value, interp))
}

func (r *Registry) CloneNode(h Node) Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes.get(h)
	if !ok {
		return 0
	}
	return r.nodes.insert(*n)
}

func (r *Registry) FreeNode(h Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes.remove(h)
}

func (r *Registry) NodeTime(h Node) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		return n.Time
	}
	return 0
}

func (r *Registry) NodeValue(h Node) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		return n.Value
	}
	return 0
}

func (r *Registry) NodeInterp(h Node) timeline.Interp {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		return n.Interp
	}
	return timeline.InterpNone
}

func (r *Registry) SetNodeTime(h Node, time uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		n.Time = time
	}
}

func (r *Registry) SetNodeValue(h Node, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		n.Value = value
	}
}

func (r *Registry) SetNodeInterp(h Node, interp timeline.Interp) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes.get(h); ok {
		n.Interp = interp
	}
}
