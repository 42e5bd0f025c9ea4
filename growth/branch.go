package growth

import (
	"errors"
	"fmt"

	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/skeleton"
)

// ErrNonShrinkingBranch is returned when twig chains could start but their
// size would never reach the minimum.
var ErrNonShrinkingBranch = errors.New("growth: branch size reduction must be positive")

// BranchLayer decorates every tip with a chain of twigs. Each link is
// added with probability Branch and is BaseSizeReduction thinner than the
// previous one; a chain ends at the first failed trial or once the size
// drops to MinimumSize. A chain also ends when subtracting
// BaseSizeReduction no longer changes the size.
type BranchLayer struct {
	src Source
}

var _ Layer[BranchParams] = (*BranchLayer)(nil)

// NewBranchLayer returns a branch layer. WithWorkers has no effect: chains
// append to the shared graph as they grow.
func NewBranchLayer(opts ...Option) *BranchLayer {
	o := applyOptions(opts)
	return &BranchLayer{src: o.src}
}

// Generate grows one chain from every tip present when it is called.
// Twig angles are absolute, drawn from Normal(BaseAngleMeanDeg,
// BaseAngleStdDevDeg) in degrees.
func (l *BranchLayer) Generate(tree *skeleton.Tree, p BranchParams) (*skeleton.Tree, error) {
	angles, err := NewNormal(p.BaseAngleMeanDeg, p.BaseAngleStdDevDeg)
	if err != nil {
		return tree, fmt.Errorf("growth: branch angle: %w", err)
	}
	if p.BaseSizeReduction <= 0 && p.InitialBranchSize > p.MinimumSize && p.Branch > 0 {
		return tree, fmt.Errorf("%w: %v", ErrNonShrinkingBranch, p.BaseSizeReduction)
	}

	c := p.Color.RGBA()
	tips := tree.TipNodes()
	visited := make(map[skeleton.NodeID]struct{}, len(tips))
	added, stalled := 0, 0
	for _, tip := range tips {
		node, size := tip, p.InitialBranchSize
		for size > p.MinimumSize {
			if _, seen := visited[node]; seen {
				break
			}
			visited[node] = struct{}{}
			if !bernoulli(l.src, p.Branch) {
				break
			}
			angle := radians(angles.Sample(l.src))
			node = tree.AddNode(node, p.InitialLength, angle, size)
			tree.SetColor(node, c)
			added++
			// A reduction below the precision of size would never reach
			// the minimum.
			next := size - p.BaseSizeReduction
			if !(next < size) {
				stalled++
				break
			}
			size = next
		}
	}
	if stalled > 0 {
		treegen.Logger().Warn("growth: branch chains stopped without shrinking",
			"chains", stalled, "reduction", p.BaseSizeReduction, "size", p.InitialBranchSize)
	}

	treegen.Logger().Info("growth: branches grown",
		"tips", len(tips), "added", added, "nodes", tree.Len())
	return tree, nil
}
