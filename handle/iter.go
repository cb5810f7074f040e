package handle

// Cursors walk a track's nodes by index. A cursor is bound to the track
// revision at creation; once nodes are inserted, removed or reordered every
// call on it returns a neutral value. Cursors must be freed with FreeIter.

// IterBegin returns a cursor at the first node.
func (r *Registry) IterBegin(h Track) Iter {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return 0
	}
	return r.iters.insert(iterEntry{track: h, rev: tr.Revision(), index: 0})
}

// IterEnd returns a cursor one past the last node.
func (r *Registry) IterEnd(h Track) Iter {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.track(h)
	if !ok {
		return 0
	}
	return r.iters.insert(iterEntry{track: h, rev: tr.Revision(), index: tr.Len()})
}

// IterNext advances the cursor. It returns false, without moving, when the
// cursor is already at the end or is stale.
func (r *Registry) IterNext(h Iter) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, tr, ok := r.iter(h)
	if !ok || e.index >= tr.Len() {
		return false
	}
	e.index++
	return true
}

// IterEqual reports whether two live cursors point at the same position of
// the same track.
func (r *Registry) IterEqual(a, b Iter) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ea, _, ok := r.iter(a)
	if !ok {
		return false
	}
	eb, _, ok := r.iter(b)
	if !ok {
		return false
	}
	return ea.track == eb.track && ea.index == eb.index
}

// IterGet returns a new node handle holding a copy of the current node, or 0
// at the end. The caller must free it.
func (r *Registry) IterGet(h Iter) Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, tr, ok := r.iter(h)
	if !ok || e.index >= tr.Len() {
		return 0
	}
	return r.nodes.insert(tr.At(e.index))
}

func (r *Registry) FreeIter(h Iter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iters.remove(h)
}
