package skeleton

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/geom"
	"github.com/gogpu/treegen/quadtree"
)

// ErrInvariant is returned by Verify when the graph is inconsistent.
var ErrInvariant = errors.New("skeleton: invariant violated")

// NodeGraph owns the nodes of one tree and the quadtree indexing their
// anchors. Both only grow.
//
// A NodeGraph is not safe for concurrent mutation. Once growth is done it
// may be read from any number of goroutines.
type NodeGraph struct {
	nodes      []Node
	index      *quadtree.Quadtree[NodeID]
	rootAnchor geom.Point
	unindexed  int
}

// NewNodeGraph returns an empty graph.
func NewNodeGraph(opts ...Option) *NodeGraph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()
	return &NodeGraph{
		index:      quadtree.New[NodeID](o.bounds, o.indexCapacity),
		rootAnchor: o.rootAnchor,
	}
}

// AddNode appends a node and returns its id.
//
// The anchor is the parent's end point, or the root anchor when parent is
// NoParent. The node is indexed by its anchor and appended to the parent's
// children. AddNode panics if parent is not an id previously returned by
// this graph, or if a second root is requested.
func (g *NodeGraph) AddNode(parent NodeID, length, angle, thickness float64) NodeID {
	var anchor geom.Point
	switch {
	case parent == NoParent:
		if len(g.nodes) > 0 {
			panic("skeleton: graph already has a root")
		}
		anchor = g.rootAnchor
	case parent < 0 || int(parent) >= len(g.nodes):
		panic(fmt.Sprintf("skeleton: parent index %d out of range [0:%d)", parent, len(g.nodes)))
	default:
		anchor = g.nodes[parent].End()
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		parent:    parent,
		anchor:    anchor,
		length:    length,
		angle:     angle,
		thickness: thickness,
	})
	if !g.index.Insert(anchor, id) {
		g.unindexed++
		treegen.Logger().Debug("skeleton: anchor outside index bounds",
			"node", int(id), "anchor", anchor.String())
	}
	if parent != NoParent {
		g.nodes[parent].children = append(g.nodes[parent].children, id)
	}
	return id
}

// SetColor overrides the renderer's default color for a node.
func (g *NodeGraph) SetColor(id NodeID, c color.RGBA) {
	n := g.Node(id)
	n.color = c
	n.hasColor = true
}

// Node returns the node with the given id. It panics for an unknown id.
func (g *NodeGraph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("skeleton: node index %d out of range [0:%d)", id, len(g.nodes)))
	}
	return &g.nodes[id]
}

// EndPoint returns the end point of node id.
func (g *NodeGraph) EndPoint(id NodeID) geom.Point {
	return g.Node(id).End()
}

// Len returns the number of nodes.
func (g *NodeGraph) Len() int {
	return len(g.nodes)
}

// RootAnchor returns the world position the root grows from.
func (g *NodeGraph) RootAnchor() geom.Point {
	return g.rootAnchor
}

// Bounds returns the area covered by the anchor index.
func (g *NodeGraph) Bounds() geom.Rect {
	return g.index.Boundary()
}

// Unindexed returns the number of nodes whose anchor fell outside Bounds.
func (g *NodeGraph) Unindexed() int {
	return g.unindexed
}

// Walk returns a pre-order traversal starting at start.
//
// Children are pushed on an explicit stack in creation order and popped
// last-in first-out, so siblings are visited in reverse creation order: the
// newest child and its subtree come first. An unknown start yields nothing.
func (g *NodeGraph) Walk(start NodeID) iter.Seq2[NodeID, *Node] {
	return func(yield func(NodeID, *Node) bool) {
		if start < 0 || int(start) >= len(g.nodes) {
			return
		}
		stack := []NodeID{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := &g.nodes[id]
			if !yield(id, n) {
				return
			}
			stack = append(stack, n.children...)
		}
	}
}

// TipNodes returns the nodes that may serve as growth fronts for the next
// layer: every node with a non-negative thickness, in id order. Layers
// decide themselves which fronts actually grow.
func (g *NodeGraph) TipNodes() []NodeID {
	tips := make([]NodeID, 0, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].thickness >= 0 {
			tips = append(tips, NodeID(i))
		}
	}
	return tips
}

// Near returns the ids of nodes whose anchor lies in r.
func (g *NodeGraph) Near(r geom.Rect) []NodeID {
	items := g.index.Query(r, nil)
	ids := make([]NodeID, len(items))
	for i, it := range items {
		ids[i] = it.Value
	}
	return ids
}

// anchorTolerance absorbs the last-bit noise of sin/cos when checking that
// a stored anchor matches its parent's end point.
const anchorTolerance = 1e-9

// Verify checks the structural invariants: a single root at id 0, parents
// created before their children, children lists that mirror parent links
// exactly and in creation order, and anchors that equal the parent's end.
// The returned error wraps ErrInvariant.
func (g *NodeGraph) Verify() error {
	counts := make([]int, len(g.nodes))
	for i := range g.nodes {
		id := NodeID(i)
		n := &g.nodes[i]
		if n.parent == NoParent {
			if id != 0 {
				return fmt.Errorf("%w: node %d is a second root", ErrInvariant, id)
			}
			if n.anchor != g.rootAnchor {
				return fmt.Errorf("%w: root anchor %v, want %v", ErrInvariant, n.anchor, g.rootAnchor)
			}
			continue
		}
		if n.parent < 0 || n.parent >= id {
			return fmt.Errorf("%w: node %d has parent %d not created before it", ErrInvariant, id, n.parent)
		}
		counts[n.parent]++
		if want := g.nodes[n.parent].End(); !n.anchor.Approx(want, anchorTolerance) {
			return fmt.Errorf("%w: node %d anchor %v, parent end %v", ErrInvariant, id, n.anchor, want)
		}
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if len(n.children) != counts[i] {
			return fmt.Errorf("%w: node %d lists %d children, %d nodes name it parent",
				ErrInvariant, i, len(n.children), counts[i])
		}
		prev := NodeID(i)
		for _, c := range n.children {
			if c <= prev || int(c) >= len(g.nodes) || g.nodes[c].parent != NodeID(i) {
				return fmt.Errorf("%w: node %d has bad child %d", ErrInvariant, i, c)
			}
			prev = c
		}
	}
	return nil
}
