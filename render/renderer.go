// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"math"

	"github.com/gogpu/treegen/skeleton"
)

// Renderer draws a tree onto a new canvas sized to the tree's bounds.
type Renderer interface {
	Render(tree *skeleton.Tree) *Canvas
}

// NodeColor returns the stored color of n, or the angle-derived purple.
func NodeColor(n *skeleton.Node) color.RGBA {
	if c, ok := n.Color(); ok {
		return c
	}
	return AngleColor(n.Angle())
}

// AngleColor maps a heading to a purple whose red and blue channels are
// |angle|*255 clamped to [10, 255].
func AngleColor(angle float64) color.RGBA {
	v := uint8(math.Max(10, math.Min(255, math.Abs(angle)*255)))
	return color.RGBA{R: v, B: v, A: 0xff}
}

// canvasSize returns the pixel dimensions covering the tree's bounds at
// the given scale.
func canvasSize(tree *skeleton.Tree, scale int) (w, h int) {
	b := tree.Graph().Bounds()
	return int(math.Ceil(b.Width())) * scale, int(math.Ceil(b.Height())) * scale
}
