package handle

// A handle packs a slot index (offset by one so that zero is never valid) in
// the low 32 bits and the slot's generation in the high 32 bits.
type id interface {
	~uint64
}

func pack[H id](index int, gen uint32) H {
	return H(uint64(gen)<<32 | uint64(index+1))
}

func unpack[H id](h H) (index int, gen uint32) {
	return int(uint32(h)) - 1, uint32(uint64(h) >> 32)
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// arena owns values of type T and hands out generation-checked handles.
// Freed slots are reused with a bumped generation, so old handles miss.
type arena[H id, T any] struct {
	slots []slot[T]
	free  []int
}

func (a *arena[H, T]) insert(v T) H {
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = len(a.slots) - 1
	}

	s := &a.slots[i]
	s.gen++
	s.live = true
	s.val = v
	return pack[H](i, s.gen)
}

func (a *arena[H, T]) get(h H) (*T, bool) {
	i, gen := unpack(h)
	if i < 0 || i >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[i]
	if !s.live || s.gen != gen {
		return nil, false
	}
	return &s.val, true
}

func (a *arena[H, T]) remove(h H) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	i, _ := unpack(h)
	var zero T
	a.slots[i].live = false
	a.slots[i].val = zero
	a.free = append(a.free, i)
	return true
}

func (a *arena[H, T]) len() int {
	return len(a.slots) - len(a.free)
}
