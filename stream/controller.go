package stream

import (
	"sync"
)

// Controller renders the live animation and cross-fades away from a
// previous one after the timeline is swapped out.
type Controller struct {
	mu                  sync.Mutex
	animation           Animation
	previous            Animation
	transition          float64
	transitionIncrement float64
}

// NewController creates an instance of a Controller. A fade takes fadeSecs
// worth of frames at frameRate; zero disables fading.
func NewController(animation Animation, frameRate float64, fadeSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.transitionIncrement = 1.0
	if frameRate > 0 && fadeSecs > 0 {
		c.transitionIncrement = 1.0 / (frameRate * fadeSecs)
	}

	return c
}

// FadeFrom starts a cross-fade from previous to the live animation.
func (c *Controller) FadeFrom(previous Animation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transitionIncrement >= 1.0 {
		return
	}
	c.previous = previous
	c.transition = 0.0
}

// Fading reports whether a cross-fade is in progress.
func (c *Controller) Fading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous != nil
}

func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.previous == nil {
		return c.animation.CalculateFrame(runtimeMs)
	}

	f1 := c.previous.CalculateFrame(runtimeMs)
	f2 := c.animation.CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transition)
	c.transition += c.transitionIncrement

	if c.transition >= 1.0 {
		c.previous = nil
		c.transition = 0.0
	}

	return f
}
