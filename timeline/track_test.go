package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 0.001

func assertOrdered(t *testing.T, tr *Track) {
	t.Helper()
	nodes := tr.Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, uint32(0), nodes[0].Time)
	for i := 1; i < len(nodes); i++ {
		assert.Less(t, nodes[i-1].Time, nodes[i].Time, "nodes %d and %d", i-1, i)
	}
}

func TestZeroNode(t *testing.T) {
	tr := New().Track("camera")
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, NewNode(0, 0, InterpNone), tr.At(0))
}

func TestAddZeroTime(t *testing.T) {
	tr := New().Track("camera")
	assert.ErrorIs(t, tr.Add(0, 1, InterpLinear), ErrZeroTimeForbidden)
	assert.Equal(t, 1, tr.Len())
}

func TestAddDuplicate(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(1, 0, InterpNone))
	assert.ErrorIs(t, tr.Add(1, 0, InterpNone), ErrDuplicateTime)
	assert.Equal(t, 2, tr.Len())
}

func TestAddUnknownInterp(t *testing.T) {
	tr := New().Track("camera")
	assert.ErrorIs(t, tr.Add(5, 1, Interp(42)), ErrUnknownInterp)
	assert.Equal(t, 1, tr.Len())
}

func TestAddKeepsOrder(t *testing.T) {
	tr := New().Track("camera.x")
	for _, time := range []uint32{5, 2, 9, 7, 1, 30, 8, 3} {
		require.NoError(t, tr.Add(time, float64(time), InterpLinear))
		assertOrdered(t, tr)
	}
	assert.Equal(t, 9, tr.Len())

	var times []uint32
	for _, n := range tr.Nodes() {
		times = append(times, n.Time)
	}
	assert.Equal(t, []uint32{0, 1, 2, 3, 5, 7, 8, 9, 30}, times)
}

func TestGet(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpLinear))

	n, ok := tr.Get(10)
	require.True(t, ok)
	assert.Equal(t, NewNode(10, 1, InterpLinear), n)

	_, ok = tr.Get(11)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpLinear))
	require.NoError(t, tr.Add(20, 2, InterpLinear))

	assert.ErrorIs(t, tr.Delete(15), ErrNotFound)
	assert.Equal(t, 3, tr.Len())

	require.NoError(t, tr.Delete(10))
	assert.Equal(t, 2, tr.Len())
	_, ok := tr.Get(10)
	assert.False(t, ok)
	assertOrdered(t, tr)
}

func TestDeleteZeroNode(t *testing.T) {
	tr := New().Track("camera")
	assert.ErrorIs(t, tr.Delete(0), ErrZeroTimeForbidden)
	assert.Equal(t, 1, tr.Len())
}

func TestUpdateInPlace(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpNone))
	require.NoError(t, tr.Add(20, 2, InterpNone))
	rev := tr.Revision()

	require.NoError(t, tr.Update(10, NewNode(10, 5, InterpLinear)))
	assert.Equal(t, 3, tr.Len())
	n, _ := tr.Get(10)
	assert.Equal(t, NewNode(10, 5, InterpLinear), n)
	assert.Equal(t, rev, tr.Revision())
	assertOrdered(t, tr)
}

func TestUpdateZeroNodeValue(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Update(0, NewNode(0, 3, InterpLinear)))
	assert.Equal(t, NewNode(0, 3, InterpLinear), tr.At(0))
}

func TestUpdateMoves(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpNone))

	require.NoError(t, tr.Update(10, NewNode(20, 2, InterpNone)))
	assert.Equal(t, 2, tr.Len())
	n, ok := tr.Get(20)
	require.True(t, ok)
	assert.Equal(t, 2.0, n.Value)
	_, ok = tr.Get(10)
	assert.False(t, ok)

	require.NoError(t, tr.Add(10, 1, InterpNone))
	assert.Equal(t, 3, tr.Len())

	require.NoError(t, tr.Update(10, NewNode(30, 3, InterpNone)))
	_, ok = tr.Get(10)
	assert.False(t, ok)
	n, _ = tr.Get(20)
	assert.Equal(t, 2.0, n.Value)
	n, _ = tr.Get(30)
	assert.Equal(t, 3.0, n.Value)
	assert.Equal(t, 3, tr.Len())
	assertOrdered(t, tr)
}

func TestUpdateLastNodeBackwards(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpNone))
	require.NoError(t, tr.Add(20, 2, InterpNone))

	// Moving the last node before its predecessor must re-sort.
	require.NoError(t, tr.Update(20, NewNode(5, 2, InterpNone)))
	assert.Equal(t, 3, tr.Len())
	assertOrdered(t, tr)
	assert.Equal(t, uint32(5), tr.At(1).Time)
}

func TestUpdateFailuresLeaveTrack(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpNone))
	require.NoError(t, tr.Add(20, 2, InterpNone))
	require.NoError(t, tr.Add(30, 3, InterpNone))
	before := tr.Nodes()

	assert.ErrorIs(t, tr.Update(15, NewNode(15, 0, InterpNone)), ErrNotFound)
	assert.ErrorIs(t, tr.Update(10, NewNode(30, 0, InterpNone)), ErrDuplicateTime)
	assert.ErrorIs(t, tr.Update(30, NewNode(20, 0, InterpNone)), ErrDuplicateTime)
	assert.ErrorIs(t, tr.Update(10, NewNode(0, 0, InterpNone)), ErrZeroTimeForbidden)
	assert.ErrorIs(t, tr.Update(0, NewNode(5, 0, InterpNone)), ErrZeroTimeForbidden)
	assert.ErrorIs(t, tr.Update(10, NewNode(10, 0, Interp(-1))), ErrUnknownInterp)

	assert.Equal(t, before, tr.Nodes())
}

func TestValueAt(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpLinear))
	require.NoError(t, tr.Add(20, 2, InterpLinear))
	require.Equal(t, 3, tr.Len())

	assert.InDelta(t, 0.5, tr.ValueAt(5), tol)
	assert.InDelta(t, 1.5, tr.ValueAt(15), tol)
	assert.Equal(t, 2.0, tr.ValueAt(25))
	assert.Equal(t, 0.0, tr.ValueAt(0))
	assert.Equal(t, 1.0, tr.ValueAt(10))
	assert.Equal(t, 2.0, tr.ValueAt(20))
}

func TestValueAtHold(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Update(0, NewNode(0, 4, InterpNone)))
	require.NoError(t, tr.Add(10, 8, InterpNone))

	assert.Equal(t, 4.0, tr.ValueAt(9))
	// The right node owns the span, so a linear node after a hold still blends.
	require.NoError(t, tr.Add(20, 0, InterpLinear))
	assert.InDelta(t, 4.0, tr.ValueAt(15), tol)
}

func TestValueAtSingleNode(t *testing.T) {
	tr := New().Track("camera")
	assert.Equal(t, 0.0, tr.ValueAt(100))
}

func TestEasedEndpoints(t *testing.T) {
	for _, interp := range []Interp{InterpEaseIn, InterpEaseOut, InterpEaseInOut} {
		t.Run(interp.String(), func(t *testing.T) {
			tr := New().Track("camera")
			require.NoError(t, tr.Add(100, 10, interp))

			assert.InDelta(t, 0.0, tr.ValueAt(0), tol)
			assert.InDelta(t, 10.0, tr.ValueAt(100), tol)
			v := tr.ValueAt(50)
			assert.Greater(t, v, 0.0)
			assert.Less(t, v, 10.0)
		})
	}

	left, right := NewNode(0, 0, InterpNone), NewNode(10, 1, InterpNone)
	assert.Less(t, InterpEaseIn.Blend(left, right, 0.25), InterpLinear.Blend(left, right, 0.25))
	assert.Greater(t, InterpEaseOut.Blend(left, right, 0.25), InterpLinear.Blend(left, right, 0.25))
	assert.InDelta(t, 0.5, InterpEaseInOut.Blend(left, right, 0.5), tol)
}

func TestBetween(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpLinear))

	left, right, ok := tr.Between(4)
	require.True(t, ok)
	assert.Equal(t, uint32(0), left.Time)
	assert.Equal(t, uint32(10), right.Time)

	left, _, ok = tr.Between(11)
	assert.False(t, ok)
	assert.Equal(t, uint32(10), left.Time)
}

func TestNextPrev(t *testing.T) {
	tr := New().Track("camera")
	require.NoError(t, tr.Add(10, 1, InterpLinear))

	n, ok, err := tr.Next(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(10), n.Time)

	_, ok, err = tr.Next(10)
	require.NoError(t, err)
	assert.False(t, ok)

	n, ok, err = tr.Prev(10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0), n.Time)

	_, ok, err = tr.Prev(0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = tr.Next(5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNodesIsACopy(t *testing.T) {
	tr := New().Track("camera")
	nodes := tr.Nodes()
	nodes[0].Value = 99
	assert.Equal(t, 0.0, tr.At(0).Value)
}

func TestInterpString(t *testing.T) {
	assert.Equal(t, "linear", InterpLinear.String())
	assert.Equal(t, "Interp(9)", Interp(9).String())
}
