package growth

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/treegen/skeleton"
)

// chainParams uses sizes that are exact in binary so chain lengths are
// predictable.
func chainParams() BranchParams {
	p := DefaultBranchParams(1, 1, 0.5)
	p.InitialBranchSize = 1
	p.BaseSizeReduction = 0.25
	p.MinimumSize = 0.5
	p.BaseAngleStdDevDeg = 0
	return p
}

func TestBranch_ChainOnSingleTip(t *testing.T) {
	tree := skeleton.NewTree()
	tree.AddNode(skeleton.NoParent, 10, 0, 5)

	got, err := NewBranchLayer(WithSeed(1)).Generate(tree, chainParams())
	if err != nil {
		t.Fatal(err)
	}
	want := []record{
		{Parent: skeleton.NoParent, Length: 10, Angle: 0, Thickness: 5},
		{Parent: 0, Length: 10, Angle: radians(20), Thickness: 1},
		{Parent: 1, Length: 10, Angle: radians(20), Thickness: 0.75},
	}
	diff(t, want, snapshot(got))

	green := color.RGBA{G: 255, A: 255}
	for _, id := range []skeleton.NodeID{1, 2} {
		if c, ok := got.Node(id).Color(); !ok || c != green {
			t.Errorf("node %d color = %v, %v; want %v", id, c, ok, green)
		}
	}
	if err := got.Graph().Verify(); err != nil {
		t.Error(err)
	}
}

func TestBranch_EveryTipGetsOneChain(t *testing.T) {
	tree := skeleton.NewTree()
	root := tree.AddNode(skeleton.NoParent, 10, 0, 5)
	tree.AddNode(root, 10, 0.3, 4)
	tree.AddNode(root, 10, -0.3, 4)

	got, err := NewBranchLayer(WithSeed(1)).Generate(tree, chainParams())
	if err != nil {
		t.Fatal(err)
	}
	// Three tips, two links each.
	if got.Len() != 9 {
		t.Errorf("Len() = %d, want 9", got.Len())
	}
	for id := skeleton.NodeID(3); id < 9; id++ {
		if got.Node(id).NumChildren() > 1 {
			t.Errorf("twig %d has %d children, want a chain", id, got.Node(id).NumChildren())
		}
	}
}

func TestBranch_NoTrialsSucceed(t *testing.T) {
	tree := skeleton.NewTree()
	tree.AddNode(skeleton.NoParent, 10, 0, 5)
	p := chainParams()
	p.Branch = 0
	got, err := NewBranchLayer(WithSeed(1)).Generate(tree, p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Errorf("Len() = %d, want 1", got.Len())
	}
}

func TestBranch_TerminatesWithNonPositiveMinimum(t *testing.T) {
	tree := skeleton.NewTree()
	tree.AddNode(skeleton.NoParent, 10, 0, 5)
	p := chainParams()
	p.MinimumSize = -1
	got, err := NewBranchLayer(WithSeed(1)).Generate(tree, p)
	if err != nil {
		t.Fatal(err)
	}
	// 1, 0.75, 0.5, 0.25, 0, -0.25, -0.5, -0.75
	if got.Len() != 9 {
		t.Errorf("Len() = %d, want 9", got.Len())
	}
}

// boundedSource fails the test instead of letting a runaway layer draw
// forever.
type boundedSource struct {
	Source
	t    *testing.T
	left int
}

func (s *boundedSource) Float64() float64 {
	s.left--
	if s.left < 0 {
		s.t.Fatal("layer kept drawing after its budget")
	}
	return s.Source.Float64()
}

func TestBranch_TerminatesWhenReductionIsBelowPrecision(t *testing.T) {
	tree := skeleton.NewTree()
	tree.AddNode(skeleton.NoParent, 10, 0, 5)
	p := DefaultBranchParams(1, 1, 0.5)
	p.BaseSizeReduction = 1e-20

	src := &boundedSource{Source: NewSource(1), t: t, left: 1000}
	got, err := NewBranchLayer(WithSource(src)).Generate(tree, p)
	if err != nil {
		t.Fatal(err)
	}
	// The first link is added, then the size stops changing.
	if got.Len() != 2 {
		t.Errorf("Len() = %d, want 2", got.Len())
	}
	if th := got.Node(1).Thickness(); th != p.InitialBranchSize {
		t.Errorf("twig thickness = %v, want %v", th, p.InitialBranchSize)
	}
}

func TestBranch_EmptyTree(t *testing.T) {
	got, err := NewBranchLayer(WithSeed(1)).Generate(skeleton.NewTree(), chainParams())
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestBranch_AnglesAreAbsolute(t *testing.T) {
	tree := skeleton.NewTree()
	tree.AddNode(skeleton.NoParent, 10, 1.2, 5)
	p := chainParams()
	p.BaseAngleStdDevDeg = 5
	got, err := NewBranchLayer(WithSeed(9)).Generate(tree, p)
	if err != nil {
		t.Fatal(err)
	}
	for id := skeleton.NodeID(1); int(id) < got.Len(); id++ {
		// 20 deg +- 8 sigma never reaches the parent heading of 1.2 rad.
		if a := got.Node(id).Angle(); math.Abs(a-radians(20)) > radians(40) {
			t.Errorf("twig %d angle = %v, want near %v", id, a, radians(20))
		}
	}
}

func TestBranch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BranchParams)
		want   error
	}{
		{"zero reduction", func(p *BranchParams) { p.BaseSizeReduction = 0 }, ErrNonShrinkingBranch},
		{"negative reduction", func(p *BranchParams) { p.BaseSizeReduction = -0.1 }, ErrNonShrinkingBranch},
		{"negative angle deviation", func(p *BranchParams) { p.BaseAngleStdDevDeg = -1 }, ErrDegenerateDistribution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := skeleton.NewTree()
			tree.AddNode(skeleton.NoParent, 10, 0, 5)
			p := chainParams()
			tt.modify(&p)
			got, err := NewBranchLayer(WithSeed(1)).Generate(tree, p)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if got.Len() != 1 {
				t.Errorf("failed layer added %d nodes", got.Len()-1)
			}
		})
	}
}

func TestBranch_ZeroReductionAllowedWhenNoChainCanStart(t *testing.T) {
	p := chainParams()
	p.BaseSizeReduction = 0

	for _, modify := range []func(*BranchParams){
		func(p *BranchParams) { p.Branch = 0 },
		func(p *BranchParams) { p.InitialBranchSize = p.MinimumSize },
	} {
		q := p
		modify(&q)
		tree := skeleton.NewTree()
		tree.AddNode(skeleton.NoParent, 10, 0, 5)
		if _, err := NewBranchLayer(WithSeed(1)).Generate(tree, q); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
}
