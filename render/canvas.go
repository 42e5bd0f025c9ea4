// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/treegen/geom"
)

// ErrUnknownFormat is returned when an output format cannot be determined.
var ErrUnknownFormat = errors.New("render: unknown image format")

// Format is an output encoding.
type Format int

const (
	// PNG encodes losslessly with alpha.
	PNG Format = iota
	// BMP encodes an uncompressed bitmap.
	BMP
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Canvas is an RGBA pixel buffer.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent canvas. Non-positive dimensions yield an
// empty canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. Writes to it show on the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetPixel sets a single pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// Pixel returns a single pixel, transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	p := c.img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		p[i+0] = col.R
		p[i+1] = col.G
		p[i+2] = col.B
		p[i+3] = col.A
	}
}

// FillPolygon composites a closed polygon over the canvas with the
// non-zero winding rule. Fewer than three points, or any non-finite
// point, draw nothing. Only pixels inside the polygon's bounding box are
// touched.
func (c *Canvas) FillPolygon(pts []geom.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	box, ok := polygonBounds(pts, c.img.Rect)
	if !ok || box.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r := vector.NewRasterizer(box.Dx(), box.Dy())
	r.DrawOp = xdraw.Over
	r.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.ClosePath()
	r.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// polygonBounds returns the smallest pixel rectangle holding pts, clipped
// to clip.
func polygonBounds(pts []geom.Point, clip image.Rectangle) (image.Rectangle, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return image.Rectangle{}, false
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	clampX := func(v float64) int {
		return int(math.Max(float64(clip.Min.X), math.Min(float64(clip.Max.X), v)))
	}
	clampY := func(v float64) int {
		return int(math.Max(float64(clip.Min.Y), math.Min(float64(clip.Max.Y), v)))
	}
	return image.Rect(clampX(math.Floor(minX)), clampY(math.Floor(minY)),
		clampX(math.Ceil(maxX)), clampY(math.Ceil(maxY))), true
}

// Downsample returns a copy scaled down by factor with Catmull-Rom
// filtering. A factor of 1 or less returns c itself.
func (c *Canvas) Downsample(factor int) *Canvas {
	if factor <= 1 {
		return c
	}
	dst := NewCanvas(c.Width()/factor, c.Height()/factor)
	xdraw.CatmullRom.Scale(dst.img, dst.img.Rect, c.img, c.img.Rect, xdraw.Src, nil)
	return dst
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, c.img)
	case BMP:
		return bmp.Encode(w, c.img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Save writes the canvas to path, choosing the format by extension.
func (c *Canvas) Save(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return c.Encode(out, f)
}
