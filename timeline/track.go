package timeline

// Track is one animated scalar channel: an ordered list of nodes with unique
// times. A track always holds a node at time 0.
type Track struct {
	name  string
	nodes []Node
	rev   uint64
}

func newTrack(name string) *Track {
	tr := &Track{name: name}
	tr.nodes = append(tr.nodes, NewNode(0, 0, InterpNone))
	return tr
}

// Name returns the track's name.
func (tr *Track) Name() string {
	return tr.name
}

// Len returns the number of nodes, including the zero node.
func (tr *Track) Len() int {
	return len(tr.nodes)
}

// At returns the i'th node in time order.
func (tr *Track) At(i int) Node {
	return tr.nodes[i]
}

// Revision is bumped whenever nodes are inserted, removed or reordered.
func (tr *Track) Revision() uint64 {
	return tr.rev
}

// Nodes returns a copy of the nodes in time order.
func (tr *Track) Nodes() []Node {
	out := make([]Node, len(tr.nodes))
	copy(out, tr.nodes)
	return out
}

// Add inserts a node. Time 0 is reserved and occupied times are rejected.
func (tr *Track) Add(time uint32, value float64, interp Interp) error {
	return tr.add(NewNode(time, value, interp))
}

func (tr *Track) add(n Node) error {
	if n.Time == 0 {
		return ErrZeroTimeForbidden
	}
	if !n.Interp.Valid() {
		return ErrUnknownInterp
	}

	prevTime := tr.nodes[0].Time
	index := len(tr.nodes)
	for i := 1; i < len(tr.nodes); i++ {
		curTime := tr.nodes[i].Time
		if curTime == n.Time {
			return ErrDuplicateTime
		}
		if curTime > n.Time && n.Time > prevTime {
			index = i
			break
		}
		prevTime = curTime
	}

	tr.insert(index, n)
	return nil
}

func (tr *Track) insert(index int, n Node) {
	tr.nodes = append(tr.nodes, Node{})
	copy(tr.nodes[index+1:], tr.nodes[index:])
	tr.nodes[index] = n
	tr.rev++
}

func (tr *Track) remove(index int) {
	tr.nodes = append(tr.nodes[:index], tr.nodes[index+1:]...)
	tr.rev++
}

func (tr *Track) index(time uint32) (int, bool) {
	for i, n := range tr.nodes {
		if n.Time == time {
			return i, true
		}
	}
	return 0, false
}

// Get returns the node stored at exactly time.
func (tr *Track) Get(time uint32) (Node, bool) {
	i, ok := tr.index(time)
	if !ok {
		return Node{}, false
	}
	return tr.nodes[i], true
}

// Delete removes the node at time. The zero node cannot be deleted.
func (tr *Track) Delete(time uint32) error {
	i, ok := tr.index(time)
	if !ok {
		return ErrNotFound
	}
	if i == 0 {
		return ErrZeroTimeForbidden
	}
	tr.remove(i)
	return nil
}

// Update replaces the node at time with n. If n keeps its slot in the
// ordering it is written in place, otherwise it is moved. A failed update
// leaves the track unchanged.
func (tr *Track) Update(time uint32, n Node) error {
	i, ok := tr.index(time)
	if !ok {
		return ErrNotFound
	}
	if !n.Interp.Valid() {
		return ErrUnknownInterp
	}
	if n.Time == time {
		tr.nodes[i] = n
		return nil
	}
	if i == 0 || n.Time == 0 {
		return ErrZeroTimeForbidden
	}

	last := len(tr.nodes) - 1
	if i == last && n.Time > tr.nodes[i-1].Time {
		tr.nodes[i] = n
		return nil
	}

	if _, taken := tr.index(n.Time); taken {
		return ErrDuplicateTime
	}
	tr.remove(i)
	// Cannot fail: time is non-zero and unoccupied.
	_ = tr.add(n)
	return nil
}

// Between returns the bracketing pair for time: the first adjacent nodes
// with left.Time <= time <= right.Time. ok is false past the last node, in
// which case left is the last node.
func (tr *Track) Between(time uint32) (left, right Node, ok bool) {
	prev := tr.nodes[0]
	for _, n := range tr.nodes[1:] {
		if time >= prev.Time && n.Time >= time {
			return prev, n, true
		}
		prev = n
	}
	return prev, Node{}, false
}

// ValueAt evaluates the track at time. Past the last node the last value
// holds.
func (tr *Track) ValueAt(time uint32) float64 {
	left, right, ok := tr.Between(time)
	if !ok {
		return left.Value
	}

	t := (float64(time) - float64(left.Time)) / (float64(right.Time) - float64(left.Time))
	return right.Interp.Blend(left, right, t)
}

// Next returns the node after the one stored at time.
func (tr *Track) Next(time uint32) (Node, bool, error) {
	i, ok := tr.index(time)
	if !ok {
		return Node{}, false, ErrNotFound
	}
	if i+1 >= len(tr.nodes) {
		return Node{}, false, nil
	}
	return tr.nodes[i+1], true, nil
}

// Prev returns the node before the one stored at time.
func (tr *Track) Prev(time uint32) (Node, bool, error) {
	i, ok := tr.index(time)
	if !ok {
		return Node{}, false, ErrNotFound
	}
	if i == 0 {
		return Node{}, false, nil
	}
	return tr.nodes[i-1], true, nil
}
