package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of numPixels pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

func (f *Frame) Len() int {
	return len(f.pixels)
}

func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

func (f *Frame) SetPixel(i int, c colorful.Color) {
	f.pixels[i] = c
}

// InterpolateFrame blends f towards f2 in HCL space. The result has the
// length of the shorter frame.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	n := len(f.pixels)
	if len(f2.pixels) < n {
		n = len(f2.pixels)
	}

	out := NewFrame(n)
	for i := 0; i < n; i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into a little-endian uint16 pixel count
// followed by one RGB triple per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
