// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/geom"
	"github.com/gogpu/treegen/internal/parallel"
	"github.com/gogpu/treegen/skeleton"
)

// CoverageRenderer colors each pixel by the node that covers its centre.
// Candidate nodes come from the anchor quadtree, so nodes anchored outside
// the tree's bounds are not drawn.
type CoverageRenderer struct {
	opts options
}

var _ Renderer = (*CoverageRenderer)(nil)

// NewCoverageRenderer returns a coverage renderer.
func NewCoverageRenderer(opts ...Option) *CoverageRenderer {
	return &CoverageRenderer{opts: applyOptions(opts)}
}

// Render tests every pixel centre against the tree. Rows are independent
// and are spread over the worker pool.
func (r *CoverageRenderer) Render(tree *skeleton.Tree) *Canvas {
	w, h := canvasSize(tree, 1)
	c := NewCanvas(w, h)
	c.Clear(r.opts.background)

	cov := newCoverage(tree)
	origin := tree.Graph().Bounds().Min()

	pool := parallel.NewWorkerPool(r.opts.workers)
	defer pool.Close()

	pool.Run(h, func(y int) {
		for x := 0; x < w; x++ {
			p := geom.Pt(origin.X+float64(x)+0.5, origin.Y+float64(y)+0.5)
			if id, ok := cov.at(p); ok {
				c.SetPixel(x, y, NodeColor(tree.Node(id)))
			}
		}
	})

	treegen.Logger().Debug("render: coverage rendered",
		"nodes", tree.Len(), "reach", cov.reach, "workers", pool.Workers())
	return c
}

// Cover reports which node, if any, covers p: p must lie within half the
// node's thickness of its segment. When several nodes cover p the most
// recently added one wins.
func Cover(tree *skeleton.Tree, p geom.Point) (skeleton.NodeID, bool) {
	return newCoverage(tree).at(p)
}

type coverage struct {
	tree  *skeleton.Tree
	reach float64
}

// newCoverage computes the largest distance from an anchor at which a
// node can still cover a point.
func newCoverage(tree *skeleton.Tree) coverage {
	reach := 0.0
	for _, n := range tree.Walk() {
		reach = math.Max(reach, n.Length()+n.Thickness()/2)
	}
	return coverage{tree: tree, reach: reach}
}

func (c coverage) at(p geom.Point) (skeleton.NodeID, bool) {
	best, found := skeleton.NoParent, false
	for _, id := range c.tree.Graph().Near(geom.Around(p, c.reach)) {
		n := c.tree.Node(id)
		if n.Thickness() <= 0 {
			continue
		}
		if p.DistanceToSegment(n.Anchor(), n.End()) > n.Thickness()/2 {
			continue
		}
		if !found || id > best {
			best, found = id, true
		}
	}
	return best, found
}
