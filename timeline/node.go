package timeline

import (
	"fmt"

	"github.com/fogleman/ease"
)

// Interp selects how a node blends in from its predecessor.
type Interp int

const (
	// InterpNone holds the previous node's value until the next node.
	InterpNone Interp = iota
	// InterpLinear blends proportionally between the two nodes.
	InterpLinear
	// InterpEaseIn starts slow and accelerates into the node.
	InterpEaseIn
	// InterpEaseOut starts fast and decelerates into the node.
	InterpEaseOut
	// InterpEaseInOut accelerates then decelerates.
	InterpEaseInOut
)

var interpNames = [...]string{
	InterpNone:      "none",
	InterpLinear:    "linear",
	InterpEaseIn:    "easeIn",
	InterpEaseOut:   "easeOut",
	InterpEaseInOut: "easeInOut",
}

// Valid reports whether i is a known interpolation.
func (i Interp) Valid() bool {
	return i >= InterpNone && i <= InterpEaseInOut
}

func (i Interp) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interp(%d)", int(i))
	}
	return interpNames[i]
}

// Blend computes the value at normalised position t in [0, 1] of the span
// from left to right. It is always called on the right node's Interp.
func (i Interp) Blend(left, right Node, t float64) float64 {
	switch i {
	case InterpLinear:
		return left.Value*(1-t) + right.Value*t
	case InterpEaseIn:
		return eased(left, right, ease.InQuad(t))
	case InterpEaseOut:
		return eased(left, right, ease.OutQuad(t))
	case InterpEaseInOut:
		return eased(left, right, ease.InOutQuad(t))
	default:
		return left.Value
	}
}

func eased(left, right Node, e float64) float64 {
	return left.Value + (right.Value-left.Value)*e
}

// Node is a single keyframe.
type Node struct {
	Time   uint32
	Value  float64
	Interp Interp
}

// NewNode creates a Node.
func NewNode(time uint32, value float64, interp Interp) Node {
	return Node{Time: time, Value: value, Interp: interp}
}

func (n Node) String() string {
	return fmt.Sprintf("{%d %g %v}", n.Time, n.Value, n.Interp)
}
