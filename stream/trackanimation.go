package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyline/timeline"
	"github.com/matt-g-everett/keyline/util"
)

// Channel values used when a track is missing from the timeline.
const (
	defaultHue       = 0.0
	defaultChroma    = 1.0
	defaultLuminance = 0.05
)

// A TrackAnimation is an Animation that colours the strip from three timeline
// tracks. Hue is sampled per pixel, offset along the strip so the pattern
// travels; chroma and luminance are shared by the whole frame.
type TrackAnimation struct {
	shared    *timeline.Shared
	numPixels int
	hue       string
	chroma    string
	luminance string
	loopMs    uint32
	spreadMs  uint32
}

// NewTrackAnimation creates an instance of a TrackAnimation object.
func NewTrackAnimation(shared *timeline.Shared, config Config) *TrackAnimation {
	a := new(TrackAnimation)
	a.shared = shared
	a.numPixels = config.Frame.Pixels
	a.hue = config.Animation.Hue
	a.chroma = config.Animation.Chroma
	a.luminance = config.Animation.Luminance
	a.loopMs = config.Animation.LoopMs
	a.spreadMs = config.Animation.SpreadMs
	return a
}

// timeAt maps the host's runtime onto the timeline.
func (a *TrackAnimation) timeAt(runtimeMs int64) uint32 {
	if runtimeMs <= 0 {
		return 0
	}
	if a.loopMs > 0 {
		return uint32(runtimeMs % int64(a.loopMs))
	}
	if runtimeMs > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(runtimeMs)
}

func channel(tl *timeline.Timeline, name string, time uint32, fallback float64) float64 {
	tr, ok := tl.Lookup(name)
	if !ok {
		return fallback
	}
	return tr.ValueAt(time)
}

// CalculateFrame creates a new Frame instance.
func (a *TrackAnimation) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(a.numPixels)
	now := a.timeAt(runtimeMs)

	a.shared.View(func(tl *timeline.Timeline) {
		c := channel(tl, a.chroma, now, defaultChroma)
		l := channel(tl, a.luminance, now, defaultLuminance)

		var hues []float64
		if tr, ok := tl.Lookup(a.hue); ok {
			hues = util.SampleLoop(tr, now, a.spreadMs, a.loopMs, a.numPixels)
		}

		for i := range f.pixels {
			h := defaultHue
			if hues != nil {
				h = hues[i]
			}
			f.pixels[i] = colorful.Hcl(math.Mod(h, 360), c, l)
		}
	})

	return f
}
