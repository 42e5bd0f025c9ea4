// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns a grown skeleton into pixels.
//
// Two renderers are provided:
//
//   - PolygonRenderer fills each node as a rotated rectangle running from
//     its anchor to its end point, in pre-order, with optional
//     supersampling.
//   - CoverageRenderer decides every pixel independently by asking the
//     anchor quadtree which segments could reach it. It is slower but
//     exercises the spatial index and splits rows across workers.
//
// Both draw onto a Canvas, which can be encoded as PNG or BMP.
//
// # Colors
//
// A node drawn without a stored color gets an angle-derived purple: red
// and blue both equal |angle|*255 clamped to [10, 255]. See NodeColor.
package render
