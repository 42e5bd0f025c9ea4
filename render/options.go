// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Option configures a renderer during creation.
//
// Example:
//
//	r := render.NewPolygonRenderer(
//	    render.WithBackground(color.RGBA{A: 255}),
//	    render.WithSupersample(2),
//	)
type Option func(*options)

type options struct {
	background  color.RGBA
	supersample int
	workers     int
}

func defaultOptions() options {
	return options{
		background:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		supersample: 1,
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c color.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSupersample renders at n times the resolution and scales the result
// down. Values below 1 are treated as 1. The coverage renderer ignores it.
func WithSupersample(n int) Option {
	return func(o *options) {
		o.supersample = max(n, 1)
	}
}

// WithWorkers sets how many goroutines render rows. Zero or negative means
// GOMAXPROCS. The polygon renderer ignores it.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
