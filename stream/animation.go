package stream

// An Animation renders frames for a point in the host's runtime.
type Animation interface {
	// CalculateFrame renders the frame for runtimeMs milliseconds after the
	// host started.
	CalculateFrame(runtimeMs int64) *Frame
}
