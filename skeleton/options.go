package skeleton

import "github.com/gogpu/treegen/geom"

// Default world dimensions. The anchor index covers this area.
const (
	DefaultWidth  = 1024
	DefaultHeight = 1024

	// DefaultIndexCapacity is the number of anchors a quadtree region holds
	// before subdividing.
	DefaultIndexCapacity = 4
)

// Option configures a NodeGraph or Tree during creation.
//
// Example:
//
//	tree := skeleton.NewTree(
//	    skeleton.WithBounds(geom.RectFromBounds(0, 0, 800, 600)),
//	)
type Option func(*graphOptions)

type graphOptions struct {
	bounds        geom.Rect
	rootAnchor    geom.Point
	hasRoot       bool
	indexCapacity int
}

func defaultOptions() graphOptions {
	return graphOptions{
		bounds:        geom.RectFromBounds(0, 0, DefaultWidth, DefaultHeight),
		indexCapacity: DefaultIndexCapacity,
	}
}

// WithBounds sets the area covered by the anchor index. Anchors outside it
// are kept in the graph but cannot be found by Near. Unless WithRootAnchor
// is given, the root grows from the bottom centre of bounds.
func WithBounds(b geom.Rect) Option {
	return func(o *graphOptions) {
		o.bounds = b
	}
}

// WithRootAnchor sets the fixed world position of the root node.
func WithRootAnchor(p geom.Point) Option {
	return func(o *graphOptions) {
		o.rootAnchor = p
		o.hasRoot = true
	}
}

// WithIndexCapacity sets the quadtree leaf capacity.
func WithIndexCapacity(n int) Option {
	return func(o *graphOptions) {
		o.indexCapacity = n
	}
}

// resolve fills in values that depend on other options.
func (o *graphOptions) resolve() {
	if !o.hasRoot {
		o.rootAnchor = geom.Point{X: o.bounds.Center.X, Y: o.bounds.Max().Y}
	}
}
