package skeleton

import (
	"image/color"
	"iter"
)

// Tree is the unit passed between growth layers. It owns exactly one
// NodeGraph.
type Tree struct {
	nodes *NodeGraph
}

// NewTree returns an empty tree.
func NewTree(opts ...Option) *Tree {
	return &Tree{nodes: NewNodeGraph(opts...)}
}

// Graph returns the underlying node graph.
func (t *Tree) Graph() *NodeGraph {
	return t.nodes
}

// AddNode appends a node; see NodeGraph.AddNode.
func (t *Tree) AddNode(parent NodeID, length, angle, thickness float64) NodeID {
	return t.nodes.AddNode(parent, length, angle, thickness)
}

// SetColor overrides the default color of a node.
func (t *Tree) SetColor(id NodeID, c color.RGBA) {
	t.nodes.SetColor(id, c)
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes.Node(id)
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Root returns the root id, or false for an empty tree.
func (t *Tree) Root() (NodeID, bool) {
	if t.nodes.Len() == 0 {
		return NoParent, false
	}
	return 0, true
}

// Walk traverses the whole tree pre-order from the root.
func (t *Tree) Walk() iter.Seq2[NodeID, *Node] {
	return t.nodes.Walk(0)
}

// TipNodes returns the current growth fronts.
func (t *Tree) TipNodes() []NodeID {
	return t.nodes.TipNodes()
}
