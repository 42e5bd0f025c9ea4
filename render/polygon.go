// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/treegen"
	"github.com/gogpu/treegen/geom"
	"github.com/gogpu/treegen/skeleton"
)

// PolygonRenderer fills every node as a rotated rectangle.
type PolygonRenderer struct {
	opts options
}

var _ Renderer = (*PolygonRenderer)(nil)

// NewPolygonRenderer returns a polygon renderer.
func NewPolygonRenderer(opts ...Option) *PolygonRenderer {
	return &PolygonRenderer{opts: applyOptions(opts)}
}

// Render draws tree in pre-order, so later nodes paint over earlier ones.
func (r *PolygonRenderer) Render(tree *skeleton.Tree) *Canvas {
	scale := r.opts.supersample
	w, h := canvasSize(tree, scale)
	c := NewCanvas(w, h)
	c.Clear(r.opts.background)

	origin := tree.Graph().Bounds().Min()
	drawn := 0
	for _, n := range tree.Walk() {
		quad := SegmentQuad(n.Anchor(), n.End(), n.Thickness())
		if quad == nil {
			continue
		}
		for i := range quad {
			quad[i] = quad[i].Sub(origin).Mul(float64(scale))
		}
		c.FillPolygon(quad, NodeColor(n))
		drawn++
	}

	treegen.Logger().Debug("render: polygons filled",
		"nodes", tree.Len(), "drawn", drawn, "supersample", scale)
	return c.Downsample(scale)
}

// SegmentQuad returns the corners of the rectangle of the given thickness
// centred on the segment a-b, or nil when the segment or thickness is
// empty.
func SegmentQuad(a, b geom.Point, thickness float64) []geom.Point {
	d := b.Sub(a).Normalize()
	if d == (geom.Point{}) || thickness <= 0 {
		return nil
	}
	n := d.Perp().Mul(thickness / 2)
	return []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}
