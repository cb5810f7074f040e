package util

import (
	"github.com/matt-g-everett/keyline/timeline"
)

// GenerateLut samples tr at length evenly spaced times across [0, span].
func GenerateLut(tr *timeline.Track, length int, span uint32) []float64 {
	lut := make([]float64, length)
	if length == 1 {
		lut[0] = tr.ValueAt(0)
		return lut
	}
	increment := float64(span) / float64(length-1)
	for i := 0; i < length; i++ {
		lut[i] = tr.ValueAt(uint32(float64(i)*increment + 0.5))
	}
	return lut
}

// SampleLoop samples n values of tr starting at start and stepping by step,
// wrapping times at loop. A zero loop disables wrapping.
func SampleLoop(tr *timeline.Track, start, step, loop uint32, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t := uint64(start) + uint64(i)*uint64(step)
		if loop > 0 {
			t %= uint64(loop)
		} else if t > uint64(^uint32(0)) {
			t = uint64(^uint32(0))
		}
		out[i] = tr.ValueAt(uint32(t))
	}
	return out
}
