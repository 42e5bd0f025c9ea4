package growth

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/internal/parallel"
	"github.com/gogpu/treegen/skeleton"
)

// ErrTreeNotEmpty is returned by the trunk layer for a tree that already
// has a root.
var ErrTreeNotEmpty = errors.New("growth: trunk needs an empty tree")

// TrunkLayer grows the primary structure: a root, then one level of new
// segments per iteration on the previous iteration's new segments.
type TrunkLayer struct {
	src     Source
	workers int
}

var _ Layer[TrunkParams] = (*TrunkLayer)(nil)

// NewTrunkLayer returns a trunk layer.
func NewTrunkLayer(opts ...Option) *TrunkLayer {
	o := applyOptions(opts)
	return &TrunkLayer{src: o.src, workers: o.workers}
}

// proposal is a child a tip wants to grow; it is materialized after every
// tip of the iteration has been evaluated.
type proposal struct {
	parent skeleton.NodeID
	angle  float64
}

// trunkRun holds the per-call derived quantities.
type trunkRun struct {
	params  TrunkParams
	splitA  Normal
	splitB  Normal
	branch  Normal
	maxSize float64
	minSize float64
}

func newTrunkRun(p TrunkParams) (*trunkRun, error) {
	dev := p.Variability * p.VariabilityModifier
	splitA, err := NewNormal(p.Spread*radians(p.AngleSpreadPositive)+radians(p.LeanBias), dev)
	if err != nil {
		return nil, fmt.Errorf("split angle: %w", err)
	}
	splitB, err := NewNormal(p.Spread*radians(p.AngleSpreadNegative)+radians(p.LeanBias), dev)
	if err != nil {
		return nil, fmt.Errorf("split angle: %w", err)
	}
	branch, err := NewNormal(radians(p.LeanBias), p.Spread*dev)
	if err != nil {
		return nil, fmt.Errorf("branch angle: %w", err)
	}
	return &trunkRun{
		params:  p,
		splitA:  splitA,
		splitB:  splitB,
		branch:  branch,
		maxSize: p.DefaultBranchSize / p.BranchSizeFalloff,
		minSize: p.DefaultBranchSize / (p.DefaultHeightMean + p.BranchSizeFalloff),
	}, nil
}

// splitRate is a Gaussian bump centred on SplitFalloffPeak.
func (r *trunkRun) splitRate(i int) float64 {
	d := float64(i) - r.params.SplitFalloffPeak
	return r.params.Split * math.Exp(-d*d)
}

// branchRate decays from 3*Branch at the first iteration.
func (r *trunkRun) branchRate(i int) float64 {
	x := float64(i)
	return 3 * r.params.Branch * math.Exp(-x*x/100)
}

// size is the thickness of segments created in iteration i.
func (r *trunkRun) size(i int) float64 {
	return r.params.DefaultBranchSize / (float64(i) + r.params.BranchSizeFalloff)
}

// color shades a segment red by its size: 255 at the root size, 30 at the
// size reached after DefaultHeightMean iterations.
func (r *trunkRun) color(size float64) color.RGBA {
	red := 255.0
	if span := r.maxSize - r.minSize; span != 0 {
		red = 30 + 225*(size-r.minSize)/span
	}
	red = math.Max(30, math.Min(255, red))
	return color.RGBA{R: uint8(red), A: 0xff}
}

// propose evaluates one tip. It reads the tip but never mutates the tree,
// so tips of one iteration can be evaluated concurrently.
func (r *trunkRun) propose(rng Source, id skeleton.NodeID, tip *skeleton.Node, split bool, branchRate float64) []proposal {
	remaining := r.params.MaxChildren - tip.NumChildren()
	if remaining <= 0 {
		return nil
	}
	if split {
		// Split angles are relative to the tip's heading.
		out := []proposal{
			{parent: id, angle: tip.Angle() + r.splitA.Sample(rng)},
			{parent: id, angle: tip.Angle() + r.splitB.Sample(rng)},
		}
		return out[:min(len(out), remaining)]
	}
	if bernoulli(rng, branchRate) {
		// A plain branch takes an absolute heading.
		return []proposal{{parent: id, angle: r.branch.Sample(rng)}}
	}
	return nil
}

// Generate grows the trunk into an empty tree.
//
// The iteration count is drawn from Normal(DefaultHeightMean,
// 2*Variability) and truncated at zero. Each iteration evaluates every tip
// created by the previous iteration: at most one tip, picked uniformly,
// splits in two; every other tip may grow one branch. Children are
// appended in tip order once all tips are evaluated and become the next
// iteration's tips. Tips never exceed MaxChildren children.
func (l *TrunkLayer) Generate(tree *skeleton.Tree, p TrunkParams) (*skeleton.Tree, error) {
	if tree.Len() != 0 {
		return tree, ErrTreeNotEmpty
	}
	heightDist, err := NewNormal(p.DefaultHeightMean, 2*p.Variability)
	if err != nil {
		return tree, fmt.Errorf("growth: trunk height: %w", err)
	}
	run, err := newTrunkRun(p)
	if err != nil {
		return tree, fmt.Errorf("growth: trunk: %w", err)
	}

	height := math.Max(0, heightDist.Sample(l.src))
	iterations := int(height)

	root := tree.AddNode(skeleton.NoParent, 2*height, 0, run.maxSize)
	tips := []skeleton.NodeID{root}

	pool := parallel.NewWorkerPool(l.workers)
	defer pool.Close()

	log := treegen.Logger()
	for i := 0; i < iterations && len(tips) > 0; i++ {
		isSplit := bernoulli(l.src, run.splitRate(i))
		splitIndex := -1
		if isSplit {
			splitIndex = l.src.IntN(len(tips))
		}
		branchRate := run.branchRate(i)

		rngs := make([]*rand.Rand, len(tips))
		for j := range rngs {
			rngs[j] = fork(l.src)
		}
		proposals := make([][]proposal, len(tips))
		pool.Run(len(tips), func(j int) {
			id := tips[j]
			proposals[j] = run.propose(rngs[j], id, tree.Node(id), j == splitIndex, branchRate)
		})

		size := run.size(i)
		c := run.color(size)
		next := make([]skeleton.NodeID, 0, len(tips))
		for _, props := range proposals {
			for _, pr := range props {
				id := tree.AddNode(pr.parent, p.DefaultBranchLength, pr.angle, size)
				tree.SetColor(id, c)
				next = append(next, id)
			}
		}

		log.Debug("growth: trunk iteration",
			"iteration", i, "tips", len(tips), "split", isSplit, "added", len(next))
		tips = next
	}

	log.Info("growth: trunk grown",
		"height", height, "iterations", iterations, "nodes", tree.Len())
	return tree, nil
}
