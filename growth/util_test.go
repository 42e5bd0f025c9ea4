package growth

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/treegen/skeleton"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

// record is the comparable shape of one node.
type record struct {
	Parent    skeleton.NodeID
	Length    float64
	Angle     float64
	Thickness float64
}

func snapshot(tree *skeleton.Tree) []record {
	out := make([]record, 0, tree.Len())
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(skeleton.NodeID(i))
		out = append(out, record{
			Parent:    n.Parent(),
			Length:    n.Length(),
			Angle:     n.Angle(),
			Thickness: n.Thickness(),
		})
	}
	return out
}

func maxChildren(tree *skeleton.Tree) int {
	m := 0
	for _, n := range tree.Walk() {
		m = max(m, n.NumChildren())
	}
	return m
}
