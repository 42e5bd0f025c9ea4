package skeleton

import (
	"image/color"
	"math"

	"github.com/gogpu/treegen/geom"
)

// NodeID identifies a node within its graph.
type NodeID int

// NoParent is the parent of the root node.
const NoParent NodeID = -1

// Node is one growth segment running from its anchor to End().
//
// Nodes are owned by a NodeGraph; the pointers handed out by the graph are
// read-only views.
type Node struct {
	parent    NodeID
	children  []NodeID
	anchor    geom.Point
	length    float64
	angle     float64
	thickness float64

	color    color.RGBA
	hasColor bool
}

// Parent returns the parent id, or NoParent for the root.
func (n *Node) Parent() NodeID { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == NoParent }

// Children returns the child ids in creation order.
// The returned slice must not be modified.
func (n *Node) Children() []NodeID { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Anchor returns the start point of the segment.
func (n *Node) Anchor() geom.Point { return n.anchor }

// Length returns the segment length.
func (n *Node) Length() float64 { return n.length }

// Angle returns the heading in radians, measured clockwise from up.
func (n *Node) Angle() float64 { return n.angle }

// Thickness returns the segment width.
func (n *Node) Thickness() float64 { return n.thickness }

// Color returns the color assigned by a growth layer, if any.
func (n *Node) Color() (color.RGBA, bool) { return n.color, n.hasColor }

// End returns the end point of the segment:
// anchor + length * (sin(angle), -cos(angle)).
func (n *Node) End() geom.Point {
	return EndPoint(n.anchor, n.length, n.angle)
}

// EndPoint computes the end of a segment of the given length and heading
// starting at anchor. Y grows downwards, so angle 0 points up.
func EndPoint(anchor geom.Point, length, angle float64) geom.Point {
	return geom.Point{
		X: anchor.X + length*math.Sin(angle),
		Y: anchor.Y - length*math.Cos(angle),
	}
}
