// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/treegen/geom"
	"github.com/gogpu/treegen/skeleton"
)

// barTree is a 64x64 world holding a vertical trunk from (32, 64) to
// (32, 24), 10 wide, and a red child 6 wide running right from its end.
func barTree() *skeleton.Tree {
	tree := skeleton.NewTree(skeleton.WithBounds(geom.RectFromBounds(0, 0, 64, 64)))
	root := tree.AddNode(skeleton.NoParent, 40, 0, 10)
	child := tree.AddNode(root, 15, math.Pi/2, 6)
	tree.SetColor(child, red)
	return tree
}

func TestAngleColor(t *testing.T) {
	tests := []struct {
		angle float64
		want  uint8
	}{
		{0, 10},
		{0.01, 10},
		{0.5, 127},
		{-0.5, 127},
		{2, 255},
		{-2, 255},
	}
	for _, tt := range tests {
		c := AngleColor(tt.angle)
		want := color.RGBA{R: tt.want, B: tt.want, A: 255}
		if c != want {
			t.Errorf("AngleColor(%v) = %v, want %v", tt.angle, c, want)
		}
	}
}

func TestNodeColor(t *testing.T) {
	tree := barTree()
	if got := NodeColor(tree.Node(0)); got != AngleColor(0) {
		t.Errorf("root color = %v, want angle color", got)
	}
	if got := NodeColor(tree.Node(1)); got != red {
		t.Errorf("child color = %v, want stored red", got)
	}
}

func TestSegmentQuad(t *testing.T) {
	quad := SegmentQuad(geom.Pt(0, 0), geom.Pt(0, -10), 4)
	want := []geom.Point{{X: 2, Y: 0}, {X: 2, Y: -10}, {X: -2, Y: -10}, {X: -2, Y: 0}}
	if len(quad) != 4 {
		t.Fatalf("len = %d, want 4", len(quad))
	}
	for i := range want {
		if !quad[i].Approx(want[i], 1e-12) {
			t.Errorf("corner %d = %v, want %v", i, quad[i], want[i])
		}
	}
	if SegmentQuad(geom.Pt(1, 1), geom.Pt(1, 1), 4) != nil {
		t.Error("zero-length segment produced a quad")
	}
	if SegmentQuad(geom.Pt(0, 0), geom.Pt(0, 5), 0) != nil {
		t.Error("zero thickness produced a quad")
	}
}

// =============================================================================
// Renderers
// =============================================================================

type probe struct {
	name string
	x, y int
	want color.RGBA
}

func barProbes() []probe {
	return []probe{
		{"trunk", 32, 50, AngleColor(0)},
		{"trunk near edge", 29, 40, AngleColor(0)},
		{"child", 40, 24, red},
		{"left of trunk", 20, 50, white},
		{"above trunk", 32, 10, white},
		{"corner", 1, 1, white},
	}
}

func TestRenderers(t *testing.T) {
	renderers := []struct {
		name string
		r    Renderer
	}{
		{"polygon", NewPolygonRenderer()},
		{"polygon supersampled", NewPolygonRenderer(WithSupersample(3))},
		{"coverage", NewCoverageRenderer(WithWorkers(3))},
	}
	for _, rr := range renderers {
		t.Run(rr.name, func(t *testing.T) {
			c := rr.r.Render(barTree())
			if c.Width() != 64 || c.Height() != 64 {
				t.Fatalf("size = %dx%d, want 64x64", c.Width(), c.Height())
			}
			for _, p := range barProbes() {
				got := c.Pixel(p.x, p.y)
				if !near(got, p.want, 3) {
					t.Errorf("%s (%d,%d) = %v, want %v", p.name, p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestRender_Background(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	for _, r := range []Renderer{
		NewPolygonRenderer(WithBackground(bg)),
		NewCoverageRenderer(WithBackground(bg)),
	} {
		c := r.Render(skeleton.NewTree(skeleton.WithBounds(geom.RectFromBounds(0, 0, 8, 8))))
		if got := c.Pixel(4, 4); got != bg {
			t.Errorf("%T: empty tree pixel = %v, want %v", r, got, bg)
		}
	}
}

func TestCover(t *testing.T) {
	tree := barTree()
	tests := []struct {
		name   string
		p      geom.Point
		wantID skeleton.NodeID
		wantOK bool
	}{
		{"on trunk axis", geom.Pt(32, 40), 0, true},
		{"within half thickness", geom.Pt(36.9, 40), 0, true},
		{"beyond half thickness", geom.Pt(37.1, 40), 0, false},
		{"on child", geom.Pt(45, 24), 1, true},
		{"overlap prefers newer", geom.Pt(33, 24), 1, true},
		{"past child end", geom.Pt(51, 24), 0, false},
		{"empty space", geom.Pt(5, 5), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Cover(tree, tt.p)
			if ok != tt.wantOK || (ok && id != tt.wantID) {
				t.Errorf("Cover(%v) = %d, %v; want %d, %v", tt.p, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool { return math.Abs(float64(x)-float64(y)) <= float64(tol) }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
